package organization

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	// No default tag: gorm omits zero-valued fields that declare one on
	// Create, which would turn IsActive=false into TRUE. The migration's
	// DEFAULT TRUE covers inserts that leave the column out.
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()"`
}

func (Organization) TableName() string {
	return "organizations"
}

type OrganizationConfig struct {
	ID             int64      `gorm:"column:id;primaryKey"`
	OrganizationID uuid.UUID  `gorm:"column:organization_id;type:uuid;uniqueIndex;not null"`
	VisibleColumns ColumnList `gorm:"column:visible_columns;type:text"`
	ColumnOrder    ColumnList `gorm:"column:column_order;type:text"`
	CreatedAt      time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;default:now()"`
}

func (OrganizationConfig) TableName() string {
	return "organization_configs"
}

// ColumnList stores an ordered list of column keys as a JSON text column so
// the same model works on both postgres and the sqlite used in tests.
type ColumnList []string

func (c ColumnList) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(c))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *ColumnList) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported column list type %T", value)
	}

	if len(raw) == 0 {
		*c = nil
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(c))
}
