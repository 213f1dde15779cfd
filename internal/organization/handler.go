package organization

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/transport"
)

type ServiceAPI interface {
	GetActiveOrganizations() ([]OrganizationResponse, error)
	ResolveOrganization(id uuid.UUID) (*Organization, error)
	VisibleColumns(orgID uuid.UUID) ([]string, error)
	GetConfig(orgID uuid.UUID) (*ConfigResponse, error)
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

func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	organizations, err := h.Service.GetActiveOrganizations()
	if err != nil {
		h.Logger.Error("ListOrganizations: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, OrganizationsResponse{
		Organizations: organizations,
		Count:         len(organizations),
	})
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// a malformed id reveals nothing, same body as an unknown tenant
		h.HandleServiceError(w, internal.ErrOrganizationNotFound)
		return
	}

	config, err := h.Service.GetConfig(orgID)
	if err != nil {
		h.Logger.Error("GetConfig: service error", "error", err, "organization_id", orgID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, config)
}
