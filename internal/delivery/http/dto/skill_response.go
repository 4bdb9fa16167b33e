package dto

import "github.com/google/uuid"

type SkillResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`
}

type CreateSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}
