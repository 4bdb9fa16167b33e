package dto

import "github.com/google/uuid"

type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
}

type ProjectDetailResponse struct {
	ProjectResponse
	RequiredSkills []RequiredSkillResponse `json:"required_skills"`
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type SetRequiredSkillRequest struct {
	SkillID            uuid.UUID `json:"skill_id"`
	MinimumProficiency string    `json:"minimum_proficiency"`
}
