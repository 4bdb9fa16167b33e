package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"crewplan/internal/database"
	"crewplan/internal/domain/allocation"
	"crewplan/internal/domain/availability"
	"crewplan/internal/domain/interval"
	"crewplan/internal/domain/scale"
	"crewplan/internal/repository"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func testRange(t *testing.T, start, end string) interval.Range {
	t.Helper()
	r, err := interval.New(date(t, start), date(t, end))
	if err != nil {
		t.Fatalf("interval.New: %v", err)
	}
	return r
}

type mockProjectRepo struct {
	project repository.Project
	found   bool
	err     error
}

func (m *mockProjectRepo) ExistsByID(context.Context, uuid.UUID) (bool, error) {
	return m.found, m.err
}
func (m *mockProjectRepo) GetByID(context.Context, uuid.UUID) (repository.Project, bool, error) {
	return m.project, m.found, m.err
}
func (m *mockProjectRepo) ListAll(context.Context) ([]repository.Project, error) {
	return []repository.Project{m.project}, m.err
}
func (m *mockProjectRepo) Create(context.Context, repository.Project) error { return m.err }

type mockRequiredSkillRepo struct {
	reqs []repository.RequiredSkill
	err  error
}

func (m *mockRequiredSkillRepo) FindByProjectID(context.Context, uuid.UUID) ([]repository.RequiredSkill, error) {
	return m.reqs, m.err
}
func (m *mockRequiredSkillRepo) Upsert(context.Context, uuid.UUID, uuid.UUID, scale.Proficiency) error {
	return m.err
}

type mockPersonnelRepo struct {
	items  []repository.Personnel
	exists bool
	err    error
}

func (m *mockPersonnelRepo) ExistsByID(context.Context, uuid.UUID) (bool, error) {
	return m.exists, m.err
}
func (m *mockPersonnelRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Personnel, bool, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, true, m.err
		}
	}
	return repository.Personnel{}, false, m.err
}
func (m *mockPersonnelRepo) ListAll(context.Context) ([]repository.Personnel, error) {
	return m.items, m.err
}
func (m *mockPersonnelRepo) Create(context.Context, repository.Personnel) error { return m.err }

type mockPersonnelSkillRepo struct {
	bySkill map[uuid.UUID][]repository.PersonnelSkill
	err     error
}

func (m *mockPersonnelSkillRepo) FindByPersonnelID(_ context.Context, id uuid.UUID) ([]repository.PersonnelSkill, error) {
	return m.bySkill[id], m.err
}
func (m *mockPersonnelSkillRepo) FindByPersonnelIDs(context.Context, []uuid.UUID) (map[uuid.UUID][]repository.PersonnelSkill, error) {
	return m.bySkill, m.err
}
func (m *mockPersonnelSkillRepo) Upsert(context.Context, uuid.UUID, uuid.UUID, scale.Proficiency, int) error {
	return m.err
}

type mockAvailabilityRepo struct {
	periods map[uuid.UUID][]availability.Period
	created []availability.Period
	updated []availability.Period
	err     error
}

func (m *mockAvailabilityRepo) FindByPersonnelID(_ context.Context, id uuid.UUID) ([]availability.Period, error) {
	return m.periods[id], m.err
}
func (m *mockAvailabilityRepo) FindByPersonnelIDs(context.Context, []uuid.UUID) (map[uuid.UUID][]availability.Period, error) {
	return m.periods, m.err
}
func (m *mockAvailabilityRepo) Create(_ context.Context, p availability.Period) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, p)
	return nil
}
func (m *mockAvailabilityRepo) Update(_ context.Context, p availability.Period) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.updated = append(m.updated, p)
	return true, nil
}

type mockAllocationRepo struct {
	existing []allocation.Allocation
	created  []allocation.Allocation
	err      error
}

func (m *mockAllocationRepo) FindByPersonnelID(context.Context, uuid.UUID) ([]allocation.Allocation, error) {
	return m.existing, m.err
}
func (m *mockAllocationRepo) FindByPersonnelIDForUpdate(context.Context, database.Tx, uuid.UUID) ([]allocation.Allocation, error) {
	return m.existing, m.err
}
func (m *mockAllocationRepo) CreateInTx(_ context.Context, _ database.Tx, a allocation.Allocation) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, a)
	return nil
}

type mockCache struct {
	data map[string][]byte
	sets int
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = b
	m.sets++
	return nil
}

func TestMatchingUsecase_RankCandidates_NoRequiredSkills(t *testing.T) {
	projectID := uuid.New()
	uc := NewMatchingUsecase(
		&mockProjectRepo{project: repository.Project{
			ID:        projectID,
			StartDate: date(t, "2025-06-01"),
			EndDate:   date(t, "2025-06-30"),
		}, found: true},
		&mockRequiredSkillRepo{},
		&mockPersonnelRepo{},
		&mockPersonnelSkillRepo{},
		&mockAvailabilityRepo{},
		nil,
	)

	_, err := uc.RankCandidates(context.Background(), projectID, CandidateFilters{})
	if !errors.Is(err, ErrNoRequiredSkills) {
		t.Fatalf("expected ErrNoRequiredSkills, got %v", err)
	}
}

func TestMatchingUsecase_RankCandidates_ProjectNotFound(t *testing.T) {
	uc := NewMatchingUsecase(
		&mockProjectRepo{found: false},
		&mockRequiredSkillRepo{},
		&mockPersonnelRepo{},
		&mockPersonnelSkillRepo{},
		&mockAvailabilityRepo{},
		nil,
	)

	_, err := uc.RankCandidates(context.Background(), uuid.New(), CandidateFilters{})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestMatchingUsecase_RankCandidates_OrdersByScoreThenExperience(t *testing.T) {
	projectID := uuid.New()
	goID := uuid.New()
	sqlID := uuid.New()

	full := uuid.New()    // meets both requirements, junior
	partial := uuid.New() // meets one, senior
	none := uuid.New()    // holds nothing relevant

	uc := NewMatchingUsecase(
		&mockProjectRepo{project: repository.Project{
			ID:        projectID,
			StartDate: date(t, "2025-06-01"),
			EndDate:   date(t, "2025-06-30"),
		}, found: true},
		&mockRequiredSkillRepo{reqs: []repository.RequiredSkill{
			{SkillID: goID, SkillName: "Go", MinimumProficiency: scale.Intermediate},
			{SkillID: sqlID, SkillName: "PostgreSQL", MinimumProficiency: scale.Intermediate},
		}},
		&mockPersonnelRepo{items: []repository.Personnel{
			{ID: none, Name: "Nobody", Experience: scale.Senior},
			{ID: partial, Name: "Partial", Experience: scale.Senior},
			{ID: full, Name: "Full", Experience: scale.Junior},
		}},
		&mockPersonnelSkillRepo{bySkill: map[uuid.UUID][]repository.PersonnelSkill{
			full: {
				{SkillID: goID, SkillName: "Go", ProficiencyLevel: scale.Advanced},
				{SkillID: sqlID, SkillName: "PostgreSQL", ProficiencyLevel: scale.Intermediate},
			},
			partial: {
				{SkillID: goID, SkillName: "Go", ProficiencyLevel: scale.Expert},
			},
		}},
		&mockAvailabilityRepo{periods: map[uuid.UUID][]availability.Period{}},
		nil,
	)

	out, err := uc.RankCandidates(context.Background(), projectID, CandidateFilters{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.Candidates) != 2 {
		t.Fatalf("expected 2 candidates (zero-match dropped), got %d", len(out.Candidates))
	}
	if out.Candidates[0].PersonnelID != full {
		t.Fatalf("expected full match ranked first")
	}
	if out.Candidates[0].MatchScore != 100 {
		t.Fatalf("expected score 100, got %d", out.Candidates[0].MatchScore)
	}
	if out.Candidates[1].MatchScore != 50 {
		t.Fatalf("expected score 50, got %d", out.Candidates[1].MatchScore)
	}
	if out.Candidates[0].Availability != 100 {
		t.Fatalf("expected default availability 100, got %d", out.Candidates[0].Availability)
	}
}

func TestMatchingUsecase_RankCandidates_ExperienceFilter(t *testing.T) {
	projectID := uuid.New()
	goID := uuid.New()
	junior := uuid.New()
	senior := uuid.New()

	uc := NewMatchingUsecase(
		&mockProjectRepo{project: repository.Project{
			ID:        projectID,
			StartDate: date(t, "2025-06-01"),
			EndDate:   date(t, "2025-06-30"),
		}, found: true},
		&mockRequiredSkillRepo{reqs: []repository.RequiredSkill{
			{SkillID: goID, SkillName: "Go", MinimumProficiency: scale.Beginner},
		}},
		&mockPersonnelRepo{items: []repository.Personnel{
			{ID: junior, Name: "J", Experience: scale.Junior},
			{ID: senior, Name: "S", Experience: scale.Senior},
		}},
		&mockPersonnelSkillRepo{bySkill: map[uuid.UUID][]repository.PersonnelSkill{
			junior: {{SkillID: goID, ProficiencyLevel: scale.Advanced}},
			senior: {{SkillID: goID, ProficiencyLevel: scale.Advanced}},
		}},
		&mockAvailabilityRepo{periods: map[uuid.UUID][]availability.Period{}},
		nil,
	)

	exp := scale.Senior
	out, err := uc.RankCandidates(context.Background(), projectID, CandidateFilters{Experience: &exp})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.Candidates) != 1 || out.Candidates[0].PersonnelID != senior {
		t.Fatalf("expected only the senior candidate, got %+v", out.Candidates)
	}
}

func TestMatchingUsecase_RankCandidates_CacheHitSkipsRepositories(t *testing.T) {
	projectID := uuid.New()
	cached := RankedCandidates{ProjectID: projectID}
	b, _ := json.Marshal(cached)
	store := &mockCache{data: map[string][]byte{
		candidatesCacheKey(projectID, CandidateFilters{}): b,
	}}

	// Project repo reports not-found: a repository read would fail the test.
	uc := NewMatchingUsecase(
		&mockProjectRepo{found: false},
		&mockRequiredSkillRepo{},
		&mockPersonnelRepo{},
		&mockPersonnelSkillRepo{},
		&mockAvailabilityRepo{},
		store,
	)

	out, err := uc.RankCandidates(context.Background(), projectID, CandidateFilters{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.ProjectID != projectID {
		t.Fatalf("expected cached result returned")
	}
}

func TestMatchingUsecase_RankCandidates_WritesCache(t *testing.T) {
	projectID := uuid.New()
	goID := uuid.New()
	person := uuid.New()
	store := &mockCache{}

	uc := NewMatchingUsecase(
		&mockProjectRepo{project: repository.Project{
			ID:        projectID,
			StartDate: date(t, "2025-06-01"),
			EndDate:   date(t, "2025-06-30"),
		}, found: true},
		&mockRequiredSkillRepo{reqs: []repository.RequiredSkill{
			{SkillID: goID, SkillName: "Go", MinimumProficiency: scale.Beginner},
		}},
		&mockPersonnelRepo{items: []repository.Personnel{{ID: person, Name: "P", Experience: scale.MidLevel}}},
		&mockPersonnelSkillRepo{bySkill: map[uuid.UUID][]repository.PersonnelSkill{
			person: {{SkillID: goID, ProficiencyLevel: scale.Intermediate}},
		}},
		&mockAvailabilityRepo{periods: map[uuid.UUID][]availability.Period{}},
		store,
	)

	if _, err := uc.RankCandidates(context.Background(), projectID, CandidateFilters{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if store.sets != 1 {
		t.Fatalf("expected one cache write, got %d", store.sets)
	}
}
