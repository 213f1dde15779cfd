package employee

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/core/common/validation"
	"github.com/frahmantamala/employee-directory/internal/organization"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// SearchParams is the validated query-parameter set for an employee search.
type SearchParams struct {
	Search     string
	Department string
	Position   string
	Location   string
	Status     string
	Page       int
	PageSize   int
}

// SearchFilters is the filter subset handed to the repository. All filters
// are conjunctive; empty fields are skipped.
type SearchFilters struct {
	Search     string
	Department string
	Position   string
	Location   string
	Status     string
}

// ParseSearchParams validates raw query parameters. Every offending field is
// reported, not just the first, and no best-effort query ever runs on a
// partially valid parameter set.
func ParseSearchParams(query url.Values) (*SearchParams, *internal.AppError) {
	params := &SearchParams{
		Search:     strings.TrimSpace(query.Get("search")),
		Department: strings.TrimSpace(query.Get("department")),
		Position:   strings.TrimSpace(query.Get("position")),
		Location:   strings.TrimSpace(query.Get("location")),
		Status:     strings.TrimSpace(query.Get("status")),
		Page:       1,
		PageSize:   DefaultPageSize,
	}

	v := validation.NewValidator()
	v.Field("status", params.Status).OneOf(StatusValues(), internal.ErrCodeInvalidStatus)

	if raw := query.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err != nil {
			v.Field("page", raw).Custom(func(interface{}) *internal.AppError {
				return internal.NewValidationFieldError("page", "page must be an integer", internal.ErrCodeInvalidPage)
			})
		} else {
			params.Page = page
		}
	}
	v.Field("page", params.Page).MinInt(1, internal.ErrCodeInvalidPage)

	if raw := query.Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err != nil {
			v.Field("page_size", raw).Custom(func(interface{}) *internal.AppError {
				return internal.NewValidationFieldError("page_size", "page_size must be an integer", internal.ErrCodeInvalidPageSize)
			})
		} else {
			params.PageSize = size
		}
	}
	v.Field("page_size", params.PageSize).
		MinInt(1, internal.ErrCodeInvalidPageSize).
		MaxInt(MaxPageSize, internal.ErrCodeInvalidPageSize)

	if err := v.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}

func (p *SearchParams) Filters() SearchFilters {
	return SearchFilters{
		Search:     p.Search,
		Department: p.Department,
		Position:   p.Position,
		Location:   p.Location,
		Status:     p.Status,
	}
}

func (p *SearchParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// SearchParamsEcho mirrors the validated parameters back in the response
// envelope. Unused filters are omitted; pagination always appears.
type SearchParamsEcho struct {
	Search     string `json:"search,omitempty"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	Location   string `json:"location,omitempty"`
	Status     string `json:"status,omitempty"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}

func (p *SearchParams) Echo() SearchParamsEcho {
	return SearchParamsEcho{
		Search:     p.Search,
		Department: p.Department,
		Position:   p.Position,
		Location:   p.Location,
		Status:     p.Status,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}

type SearchMeta struct {
	Organization   organization.OrganizationRef `json:"organization"`
	VisibleColumns []string                     `json:"visible_columns"`
	SearchParams   SearchParamsEcho             `json:"search_params"`
}

type SearchResponse struct {
	Results  []map[string]interface{} `json:"results"`
	Count    int64                    `json:"count"`
	Next     *string                  `json:"next"`
	Previous *string                  `json:"previous"`
	Meta     SearchMeta               `json:"meta"`
}

// SearchResult is the service-level outcome before the handler attaches
// pagination links.
type SearchResult struct {
	Results        []map[string]interface{}
	Count          int64
	Organization   *organization.Organization
	VisibleColumns []string
	Params         *SearchParams
}

func (r *SearchResult) HasNext() bool {
	return int64(r.Params.Page*r.Params.PageSize) < r.Count
}

func (r *SearchResult) HasPrevious() bool {
	return r.Params.Page > 1
}
