package employee

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/frahmantamala/employee-directory/internal"
	empDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-directory/internal/organization"
)

// RepositoryAPI is the employee store: filtered, ordered, paginated retrieval
// scoped to a single tenant.
type RepositoryAPI interface {
	Search(orgID uuid.UUID, filters SearchFilters, limit, offset int) ([]*empDatamodel.Employee, error)
	Count(orgID uuid.UUID, filters SearchFilters) (int64, error)
}

// TenantDirectory is the slice of the organization service the search
// orchestrator needs.
type TenantDirectory interface {
	ResolveOrganization(id uuid.UUID) (*organization.Organization, error)
	VisibleColumns(orgID uuid.UUID) ([]string, error)
}

type Service struct {
	repo   RepositoryAPI
	orgs   TenantDirectory
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, orgs TenantDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		orgs:   orgs,
		logger: logger,
	}
}

// Search resolves the tenant, applies the validated filters, paginates and
// projects each row through the tenant's visible-column configuration.
func (s *Service) Search(orgID uuid.UUID, params *SearchParams) (*SearchResult, error) {
	org, err := s.orgs.ResolveOrganization(orgID)
	if err != nil {
		return nil, err
	}

	visibleColumns, err := s.orgs.VisibleColumns(orgID)
	if err != nil {
		return nil, err
	}

	filters := params.Filters()

	count, err := s.repo.Count(org.ID, filters)
	if err != nil {
		s.logger.Error("failed to count employees", "error", err, "organization_id", org.ID)
		return nil, internal.NewInternalError("employee search failed", err)
	}

	// Pages past the last one are not-found, matching list pagination
	// conventions; only the first page may be empty.
	if params.Page > 1 && int64(params.Offset()) >= count {
		return nil, internal.ErrPageOutOfRange
	}

	rows, err := s.repo.Search(org.ID, filters, params.PageSize, params.Offset())
	if err != nil {
		s.logger.Error("failed to search employees", "error", err, "organization_id", org.ID)
		return nil, internal.NewInternalError("employee search failed", err)
	}

	results := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		results = append(results, Project(FromDataModel(row), visibleColumns))
	}

	s.logger.Info("employee search completed",
		"organization_id", org.ID,
		"count", count,
		"page", params.Page,
		"page_size", params.PageSize)

	return &SearchResult{
		Results:        results,
		Count:          count,
		Organization:   org,
		VisibleColumns: visibleColumns,
		Params:         params,
	}, nil
}
