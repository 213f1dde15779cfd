package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"column:organization_id;type:uuid;not null;index;uniqueIndex:uniq_employees_org_email,priority:1"`
	FirstName      string    `gorm:"column:first_name;not null;index"`
	LastName       string    `gorm:"column:last_name;not null;index"`
	Email          string    `gorm:"column:email;not null;uniqueIndex:uniq_employees_org_email,priority:2"`
	Phone          *string   `gorm:"column:phone"`
	Department     string    `gorm:"column:department;not null;index"`
	Position       string    `gorm:"column:position;not null"`
	Location       string    `gorm:"column:location;not null;index"`
	Status         string    `gorm:"column:status;not null;default:active;index"`
	HireDate       time.Time `gorm:"column:hire_date;type:date;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time `gorm:"column:updated_at;default:now()"`
}

func (Employee) TableName() string {
	return "employees"
}
