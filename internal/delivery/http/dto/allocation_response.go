package dto

import "github.com/google/uuid"

type AllocationResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	PersonnelID uuid.UUID `json:"personnel_id"`
	Percentage  int       `json:"allocation_percentage"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Role        string    `json:"role,omitempty"`
}

type CreateAllocationRequest struct {
	ProjectID   uuid.UUID `json:"project_id"`
	PersonnelID uuid.UUID `json:"personnel_id"`
	Percentage  *int      `json:"allocation_percentage"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Role        string    `json:"role"`
}

// CapacityConflictResponse is the 409 payload for a rejected proposal.
type CapacityConflictResponse struct {
	Total     int                  `json:"total_percentage"`
	Conflicts []AllocationResponse `json:"conflicting_allocations"`
}
