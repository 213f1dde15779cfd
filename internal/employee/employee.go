package employee

import (
	"time"

	"github.com/google/uuid"

	empDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
)

// Employee status values. The search API validates against this closed set;
// anything else is a parameter error, never an empty result.
const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusTerminated = "terminated"
	StatusOnLeave    = "on_leave"
)

func StatusValues() []string {
	return []string{StatusActive, StatusInactive, StatusTerminated, StatusOnLeave}
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusInactive, StatusTerminated, StatusOnLeave:
		return true
	}
	return false
}

type Employee struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone,omitempty"`
	Department     string    `json:"department"`
	Position       string    `json:"position"`
	Location       string    `json:"location"`
	Status         string    `json:"status"`
	HireDate       time.Time `json:"hire_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func FromDataModel(e *empDatamodel.Employee) *Employee {
	return &Employee{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		Department:     e.Department,
		Position:       e.Position,
		Location:       e.Location,
		Status:         e.Status,
		HireDate:       e.HireDate,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToDataModel(e *Employee) *empDatamodel.Employee {
	return &empDatamodel.Employee{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		Department:     e.Department,
		Position:       e.Position,
		Location:       e.Location,
		Status:         e.Status,
		HireDate:       e.HireDate,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
