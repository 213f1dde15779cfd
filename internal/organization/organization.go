package organization

import (
	"time"

	"github.com/google/uuid"

	orgDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/organization"
)

type Organization struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Config is the per-tenant column configuration in domain form. Either list
// may be empty, in which case the canonical defaults apply.
type Config struct {
	VisibleColumns []string
	ColumnOrder    []string
}

// ColumnOption is one entry of the closed set of recognized employee columns.
type ColumnOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// AvailableColumns is the full closed set of column keys a tenant may expose.
// It is static and never tenant-specific.
var AvailableColumns = []ColumnOption{
	{Key: "first_name", Label: "First Name"},
	{Key: "last_name", Label: "Last Name"},
	{Key: "email", Label: "Email"},
	{Key: "phone", Label: "Phone"},
	{Key: "department", Label: "Department"},
	{Key: "position", Label: "Position"},
	{Key: "location", Label: "Location"},
	{Key: "status", Label: "Status"},
}

// DefaultVisibleColumns returns the canonical seven-column fallback used when
// a tenant has no configuration or an empty visible list. Callers get a fresh
// slice so they cannot mutate the default.
func DefaultVisibleColumns() []string {
	return []string{"first_name", "last_name", "email", "department", "position", "location", "status"}
}

func IsRecognizedColumn(key string) bool {
	for _, opt := range AvailableColumns {
		if opt.Key == key {
			return true
		}
	}
	return false
}

func FromDataModel(o *orgDatamodel.Organization) *Organization {
	return &Organization{
		ID:        o.ID,
		Name:      o.Name,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func ToDataModel(o *Organization) *orgDatamodel.Organization {
	return &orgDatamodel.Organization{
		ID:        o.ID,
		Name:      o.Name,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
