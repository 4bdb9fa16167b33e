package matching

import (
	"math"

	"github.com/google/uuid"

	"crewplan/internal/domain/scale"
)

// RequiredSkill is the demand side: one skill a project needs at a minimum
// proficiency.
type RequiredSkill struct {
	SkillID       uuid.UUID
	SkillName     string
	MinimumLevel  scale.Proficiency
}

// PersonnelSkill is the supply side: one skill a personnel holds.
type PersonnelSkill struct {
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel scale.Proficiency
	YearsExperience  int
}

// SkillOutcome records how one required skill fared for a candidate. Held is
// false when the candidate does not have the skill at all; Meets is true only
// when the held level reaches the required minimum.
type SkillOutcome struct {
	SkillID       uuid.UUID
	SkillName     string
	RequiredLevel scale.Proficiency
	ActualLevel   scale.Proficiency
	Held          bool
	Meets         bool
}

// ScoreResult is the per-candidate output of Score.
type ScoreResult struct {
	MatchCount int
	MatchScore int
	Outcomes   []SkillOutcome
}

// Score compares a personnel's skills against a project's required skills.
// The score is the percentage of required skills met at or above their
// minimum level, rounded half away from zero. Holding a skill below the bar
// shows up in Outcomes with Meets=false but contributes nothing to the count.
func Score(required []RequiredSkill, skills []PersonnelSkill) ScoreResult {
	bySkillID := make(map[uuid.UUID]PersonnelSkill, len(skills))
	for _, s := range skills {
		if s.SkillID == uuid.Nil {
			continue
		}
		bySkillID[s.SkillID] = s
	}

	outcomes := make([]SkillOutcome, 0, len(required))
	count := 0
	for _, r := range required {
		out := SkillOutcome{
			SkillID:       r.SkillID,
			SkillName:     r.SkillName,
			RequiredLevel: r.MinimumLevel,
		}
		if s, ok := bySkillID[r.SkillID]; ok {
			out.Held = true
			out.ActualLevel = s.ProficiencyLevel
			out.Meets = scale.Meets(s.ProficiencyLevel, r.MinimumLevel)
		}
		if out.Meets {
			count++
		}
		outcomes = append(outcomes, out)
	}

	score := 0
	if len(required) > 0 {
		score = int(math.Round(float64(count) / float64(len(required)) * 100))
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return ScoreResult{MatchCount: count, MatchScore: score, Outcomes: outcomes}
}
