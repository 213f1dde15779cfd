package employee

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/transport"
)

type ServiceAPI interface {
	Search(orgID uuid.UUID, params *SearchParams) (*SearchResult, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) SearchEmployees(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, internal.ErrOrganizationNotFound)
		return
	}

	params, appErr := ParseSearchParams(r.URL.Query())
	if appErr != nil {
		h.Logger.Warn("SearchEmployees: invalid parameters", "error", appErr, "organization_id", orgID)
		h.HandleServiceError(w, appErr)
		return
	}

	result, err := h.Service.Search(orgID, params)
	if err != nil {
		h.Logger.Error("SearchEmployees: service error", "error", err, "organization_id", orgID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, SearchResponse{
		Results:  result.Results,
		Count:    result.Count,
		Next:     pageLink(r, result, result.Params.Page+1, result.HasNext()),
		Previous: pageLink(r, result, result.Params.Page-1, result.HasPrevious()),
		Meta: SearchMeta{
			Organization:   result.Organization.Ref(),
			VisibleColumns: result.VisibleColumns,
			SearchParams:   result.Params.Echo(),
		},
	})
}

// pageLink rebuilds the request URL with a different page number, preserving
// every other query parameter. Returns nil when the edge has no neighbor.
func pageLink(r *http.Request, result *SearchResult, page int, exists bool) *string {
	if !exists {
		return nil
	}

	link := *r.URL
	query := link.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(result.Params.PageSize))
	link.RawQuery = query.Encode()

	s := link.String()
	return &s
}
