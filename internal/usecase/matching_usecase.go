package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"crewplan/internal/domain/interval"
	"crewplan/internal/domain/matching"
	"crewplan/internal/domain/scale"
	"crewplan/internal/repository"
)

// Cache is the slice of the Redis wrapper the matching usecase needs; a nil
// cache disables caching entirely.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type CandidateFilters struct {
	Experience      *scale.Experience
	MinAvailability *int
}

// RankedCandidates is the full response for one project: the ranked matches
// plus the requirement list for display context.
type RankedCandidates struct {
	ProjectID      uuid.UUID                 `json:"project_id"`
	RequiredSkills []matching.RequiredSkill  `json:"required_skills"`
	Candidates     []matching.CandidateMatch `json:"candidates"`
}

type MatchingUsecase interface {
	RankCandidates(ctx context.Context, projectID uuid.UUID, filters CandidateFilters) (RankedCandidates, error)
}

type Matching struct {
	projects       repository.ProjectRepository
	requiredSkills repository.RequiredSkillRepository
	personnel      repository.PersonnelRepository
	skills         repository.PersonnelSkillRepository
	periods        repository.AvailabilityRepository
	cache          Cache
}

func NewMatchingUsecase(
	projects repository.ProjectRepository,
	requiredSkills repository.RequiredSkillRepository,
	personnel repository.PersonnelRepository,
	skills repository.PersonnelSkillRepository,
	periods repository.AvailabilityRepository,
	cache Cache,
) *Matching {
	return &Matching{
		projects:       projects,
		requiredSkills: requiredSkills,
		personnel:      personnel,
		skills:         skills,
		periods:        periods,
		cache:          cache,
	}
}

func (u *Matching) RankCandidates(ctx context.Context, projectID uuid.UUID, filters CandidateFilters) (RankedCandidates, error) {
	if projectID == uuid.Nil {
		return RankedCandidates{}, ErrProjectNotFound
	}

	key := candidatesCacheKey(projectID, filters)
	if u.cache != nil {
		var cached RankedCandidates
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	project, found, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return RankedCandidates{}, ErrInternal
	}
	if !found {
		return RankedCandidates{}, ErrProjectNotFound
	}

	reqs, err := u.requiredSkills.FindByProjectID(ctx, projectID)
	if err != nil {
		return RankedCandidates{}, ErrInternal
	}
	if len(reqs) == 0 {
		return RankedCandidates{}, ErrNoRequiredSkills
	}

	window, err := interval.New(project.StartDate, project.EndDate)
	if err != nil {
		return RankedCandidates{}, ErrInvalidInput
	}

	pool, err := u.personnel.ListAll(ctx)
	if err != nil {
		return RankedCandidates{}, ErrInternal
	}

	ids := make([]uuid.UUID, 0, len(pool))
	for _, p := range pool {
		ids = append(ids, p.ID)
	}

	skillsByID, err := u.skills.FindByPersonnelIDs(ctx, ids)
	if err != nil {
		return RankedCandidates{}, ErrInternal
	}
	periodsByID, err := u.periods.FindByPersonnelIDs(ctx, ids)
	if err != nil {
		return RankedCandidates{}, ErrInternal
	}

	required := make([]matching.RequiredSkill, 0, len(reqs))
	for _, r := range reqs {
		required = append(required, matching.RequiredSkill{
			SkillID:      r.SkillID,
			SkillName:    r.SkillName,
			MinimumLevel: r.MinimumProficiency,
		})
	}

	candidates := make([]matching.Candidate, 0, len(pool))
	for _, p := range pool {
		rows := skillsByID[p.ID]
		skills := make([]matching.PersonnelSkill, 0, len(rows))
		for _, s := range rows {
			skills = append(skills, matching.PersonnelSkill{
				SkillID:          s.SkillID,
				SkillName:        s.SkillName,
				ProficiencyLevel: s.ProficiencyLevel,
				YearsExperience:  s.YearsExperience,
			})
		}
		candidates = append(candidates, matching.Candidate{
			PersonnelID: p.ID,
			Name:        p.Name,
			Experience:  p.Experience,
			Skills:      skills,
			Periods:     periodsByID[p.ID],
		})
	}

	ranked := matching.Rank(required, candidates, window, matching.Filters{
		Experience:      filters.Experience,
		MinAvailability: filters.MinAvailability,
	})

	out := RankedCandidates{
		ProjectID:      projectID,
		RequiredSkills: required,
		Candidates:     ranked,
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, 0)
	}
	return out, nil
}

func candidatesCacheKey(projectID uuid.UUID, filters CandidateFilters) string {
	exp := "any"
	if filters.Experience != nil {
		exp = filters.Experience.String()
	}
	minAvail := "any"
	if filters.MinAvailability != nil {
		minAvail = fmt.Sprintf("%d", *filters.MinAvailability)
	}
	return fmt.Sprintf("candidates:%s:exp:%s:avail:%s", projectID, exp, minAvail)
}
