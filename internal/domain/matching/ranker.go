package matching

import (
	"sort"

	"github.com/google/uuid"

	"crewplan/internal/domain/availability"
	"crewplan/internal/domain/interval"
	"crewplan/internal/domain/scale"
)

// Candidate is one personnel in the pool under evaluation, with the
// read-only snapshot the caller fetched for them.
type Candidate struct {
	PersonnelID uuid.UUID
	Name        string
	Experience  scale.Experience
	Skills      []PersonnelSkill
	Periods     []availability.Period
}

// Filters narrows the ranked pool. Nil fields mean no filtering.
type Filters struct {
	Experience      *scale.Experience
	MinAvailability *int
}

// CandidateMatch is one ranked row: the score result plus the coarse
// availability over the project window. Never persisted.
type CandidateMatch struct {
	PersonnelID  uuid.UUID
	Name         string
	Experience   scale.Experience
	MatchCount   int
	MatchScore   int
	Availability int
	Outcomes     []SkillOutcome
}

// Rank scores every candidate against the required skills, computes coarse
// availability over the project window, drops candidates meeting zero
// requirements, applies the filters, and sorts descending by match score,
// then experience ordinal, then availability. The sort is stable: full ties
// keep pool order.
func Rank(required []RequiredSkill, pool []Candidate, window interval.Range, filters Filters) []CandidateMatch {
	out := make([]CandidateMatch, 0, len(pool))
	for _, c := range pool {
		res := Score(required, c.Skills)
		if res.MatchCount == 0 {
			continue
		}

		avail := availability.CoarseWindow(c.Periods, window)
		if filters.Experience != nil && c.Experience != *filters.Experience {
			continue
		}
		if filters.MinAvailability != nil && avail < *filters.MinAvailability {
			continue
		}

		out = append(out, CandidateMatch{
			PersonnelID:  c.PersonnelID,
			Name:         c.Name,
			Experience:   c.Experience,
			MatchCount:   res.MatchCount,
			MatchScore:   res.MatchScore,
			Availability: avail,
			Outcomes:     res.Outcomes,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		if out[i].Experience != out[j].Experience {
			return out[i].Experience > out[j].Experience
		}
		return out[i].Availability > out[j].Availability
	})

	return out
}
