package postgres

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	empDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-directory/internal/employee"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Search(orgID uuid.UUID, filters employee.SearchFilters, limit, offset int) ([]*empDatamodel.Employee, error) {
	var employees []*empDatamodel.Employee
	err := r.scope(orgID, filters).
		Order("last_name ASC, first_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) Count(orgID uuid.UUID, filters employee.SearchFilters) (int64, error) {
	var count int64
	err := r.scope(orgID, filters).Count(&count).Error
	return count, err
}

// scope builds the tenant-bound filtered query. Every query starts from the
// organization predicate so no filter combination can cross tenants. LOWER()
// comparisons keep the substring matching case-insensitive on both postgres
// and the sqlite used in tests.
func (r *EmployeeRepository) scope(orgID uuid.UUID, filters employee.SearchFilters) *gorm.DB {
	query := r.db.Model(&empDatamodel.Employee{}).Where("organization_id = ?", orgID)

	if filters.Search != "" {
		term := containsPattern(filters.Search)
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			term, term, term,
		)
	}
	if filters.Department != "" {
		query = query.Where("LOWER(department) LIKE ?", containsPattern(filters.Department))
	}
	if filters.Position != "" {
		query = query.Where("LOWER(position) LIKE ?", containsPattern(filters.Position))
	}
	if filters.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", containsPattern(filters.Location))
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	return query
}

func containsPattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(term))
	return "%" + escaped + "%"
}
