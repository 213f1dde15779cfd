package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	orgDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/organization"
	"github.com/frahmantamala/employee-directory/internal/organization"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) organization.RepositoryAPI {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) GetActive() ([]*orgDatamodel.Organization, error) {
	var orgs []*orgDatamodel.Organization
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&orgs).Error
	return orgs, err
}

func (r *OrganizationRepository) GetActiveByID(id uuid.UUID) (*orgDatamodel.Organization, error) {
	var org orgDatamodel.Organization
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&org).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) GetConfig(orgID uuid.UUID) (*orgDatamodel.OrganizationConfig, error) {
	var config orgDatamodel.OrganizationConfig
	err := r.db.Where("organization_id = ?", orgID).First(&config).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}
