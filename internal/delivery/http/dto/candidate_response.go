package dto

import "github.com/google/uuid"

type SkillOutcomeResponse struct {
	SkillID       uuid.UUID `json:"skill_id"`
	SkillName     string    `json:"skill_name"`
	RequiredLevel string    `json:"required_level"`
	ActualLevel   string    `json:"actual_level,omitempty"`
	Held          bool      `json:"held"`
	Meets         bool      `json:"meets"`
}

type CandidateMatchResponse struct {
	PersonnelID  uuid.UUID              `json:"personnel_id"`
	Name         string                 `json:"name"`
	Experience   string                 `json:"experience_level"`
	MatchCount   int                    `json:"match_count"`
	MatchScore   int                    `json:"match_score"`
	Availability int                    `json:"availability_percentage"`
	Outcomes     []SkillOutcomeResponse `json:"skill_outcomes"`
}

type RequiredSkillResponse struct {
	SkillID            uuid.UUID `json:"skill_id"`
	SkillName          string    `json:"skill_name"`
	MinimumProficiency string    `json:"minimum_proficiency"`
}

type RankedCandidatesResponse struct {
	ProjectID      uuid.UUID                `json:"project_id"`
	RequiredSkills []RequiredSkillResponse  `json:"required_skills"`
	Candidates     []CandidateMatchResponse `json:"candidates"`
}
