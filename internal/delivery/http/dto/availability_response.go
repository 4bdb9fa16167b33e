package dto

import "github.com/google/uuid"

type AvailabilityPeriodResponse struct {
	ID          uuid.UUID `json:"id"`
	PersonnelID uuid.UUID `json:"personnel_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Percentage  int       `json:"availability_percentage"`
	Notes       string    `json:"notes,omitempty"`
}

type AvailabilityReportResponse struct {
	PersonnelID uuid.UUID                    `json:"personnel_id"`
	WindowStart string                       `json:"window_start"`
	WindowEnd   string                       `json:"window_end"`
	Percentage  int                          `json:"availability_percentage"`
	Periods     []AvailabilityPeriodResponse `json:"periods"`
}

type CreatePeriodRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Percentage *int   `json:"availability_percentage"`
	Notes      string `json:"notes"`
}
