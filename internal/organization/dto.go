package organization

import "github.com/google/uuid"

type OrganizationResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}

type OrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Count         int                    `json:"count"`
}

// OrganizationRef is the minimal tenant identity echoed in envelopes.
type OrganizationRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ConfigPayload struct {
	VisibleColumns   []string       `json:"visible_columns"`
	ColumnOrder      []string       `json:"column_order"`
	AvailableColumns []ColumnOption `json:"available_columns"`
}

type ConfigResponse struct {
	Organization OrganizationRef `json:"organization"`
	Config       ConfigPayload   `json:"config"`
}

func (o *Organization) ToResponse() OrganizationResponse {
	return OrganizationResponse{
		ID:       o.ID,
		Name:     o.Name,
		IsActive: o.IsActive,
	}
}

func (o *Organization) Ref() OrganizationRef {
	return OrganizationRef{ID: o.ID, Name: o.Name}
}
