package dto

import "github.com/google/uuid"

type PersonnelResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Experience string    `json:"experience_level"`
}

type PersonnelSkillResponse struct {
	SkillID         uuid.UUID `json:"skill_id"`
	SkillName       string    `json:"skill_name"`
	Proficiency     string    `json:"proficiency_level"`
	YearsExperience int       `json:"years_experience"`
}

type PersonnelDetailResponse struct {
	PersonnelResponse
	Skills []PersonnelSkillResponse `json:"skills"`
}

type CreatePersonnelRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Experience string `json:"experience_level"`
}

type AssignSkillRequest struct {
	SkillID         uuid.UUID `json:"skill_id"`
	Proficiency     string    `json:"proficiency_level"`
	YearsExperience int       `json:"years_experience"`
}
