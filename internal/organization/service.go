package organization

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/frahmantamala/employee-directory/internal"
	orgDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/organization"
)

type RepositoryAPI interface {
	GetActive() ([]*orgDatamodel.Organization, error)
	GetActiveByID(id uuid.UUID) (*orgDatamodel.Organization, error)
	GetConfig(orgID uuid.UUID) (*orgDatamodel.OrganizationConfig, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetActiveOrganizations lists every active tenant ordered by name.
func (s *Service) GetActiveOrganizations() ([]OrganizationResponse, error) {
	dataOrgs, err := s.repo.GetActive()
	if err != nil {
		s.logger.Error("failed to list organizations", "error", err)
		return nil, internal.NewInternalError("failed to list organizations", err)
	}

	responses := make([]OrganizationResponse, 0, len(dataOrgs))
	for _, dataOrg := range dataOrgs {
		responses = append(responses, FromDataModel(dataOrg).ToResponse())
	}

	return responses, nil
}

// ResolveOrganization returns the active tenant for id. Missing and inactive
// tenants are indistinguishable to the caller.
func (s *Service) ResolveOrganization(id uuid.UUID) (*Organization, error) {
	dataOrg, err := s.repo.GetActiveByID(id)
	if err != nil {
		s.logger.Error("failed to resolve organization", "error", err, "organization_id", id)
		return nil, internal.NewInternalError("failed to resolve organization", err)
	}
	if dataOrg == nil {
		return nil, internal.ErrOrganizationNotFound
	}

	return FromDataModel(dataOrg), nil
}

// VisibleColumns resolves the effective visible-column list for a tenant:
// the configured list when non-empty, otherwise the canonical default. A
// missing config row also yields the default.
func (s *Service) VisibleColumns(orgID uuid.UUID) ([]string, error) {
	config, err := s.repo.GetConfig(orgID)
	if err != nil {
		s.logger.Error("failed to load organization config", "error", err, "organization_id", orgID)
		return nil, internal.NewInternalError("failed to load organization config", err)
	}
	if config == nil || len(config.VisibleColumns) == 0 {
		return DefaultVisibleColumns(), nil
	}

	return append([]string(nil), config.VisibleColumns...), nil
}

// GetConfig assembles the introspection payload for the config endpoint.
// column_order falls back to the effective visible columns when unset.
func (s *Service) GetConfig(orgID uuid.UUID) (*ConfigResponse, error) {
	org, err := s.ResolveOrganization(orgID)
	if err != nil {
		return nil, err
	}

	visible, err := s.VisibleColumns(orgID)
	if err != nil {
		return nil, err
	}

	config, err := s.repo.GetConfig(orgID)
	if err != nil {
		s.logger.Error("failed to load organization config", "error", err, "organization_id", orgID)
		return nil, internal.NewInternalError("failed to load organization config", err)
	}

	columnOrder := visible
	if config != nil && len(config.ColumnOrder) > 0 {
		columnOrder = append([]string(nil), config.ColumnOrder...)
	}

	return &ConfigResponse{
		Organization: org.Ref(),
		Config: ConfigPayload{
			VisibleColumns:   visible,
			ColumnOrder:      columnOrder,
			AvailableColumns: AvailableColumns,
		},
	}, nil
}
