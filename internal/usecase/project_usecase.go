package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"crewplan/internal/domain/interval"
	"crewplan/internal/domain/scale"
	"crewplan/internal/repository"
)

type ProjectInput struct {
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

type RequiredSkillInput struct {
	SkillID            uuid.UUID
	MinimumProficiency scale.Proficiency
}

type ProjectDetail struct {
	Project        repository.Project
	RequiredSkills []repository.RequiredSkill
}

type ProjectUsecase interface {
	List(ctx context.Context) ([]repository.Project, error)
	Get(ctx context.Context, id uuid.UUID) (ProjectDetail, error)
	Create(ctx context.Context, in ProjectInput) (repository.Project, error)
	SetRequiredSkill(ctx context.Context, projectID uuid.UUID, in RequiredSkillInput) error
}

type Projects struct {
	projects       repository.ProjectRepository
	requiredSkills repository.RequiredSkillRepository
	catalog        repository.SkillRepository
	invalidate     func(ctx context.Context)
}

func NewProjectUsecase(
	projects repository.ProjectRepository,
	requiredSkills repository.RequiredSkillRepository,
	catalog repository.SkillRepository,
	invalidate func(ctx context.Context),
) *Projects {
	return &Projects{projects: projects, requiredSkills: requiredSkills, catalog: catalog, invalidate: invalidate}
}

func (u *Projects) List(ctx context.Context) ([]repository.Project, error) {
	out, err := u.projects.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Projects) Get(ctx context.Context, id uuid.UUID) (ProjectDetail, error) {
	if id == uuid.Nil {
		return ProjectDetail{}, ErrProjectNotFound
	}
	p, found, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return ProjectDetail{}, ErrInternal
	}
	if !found {
		return ProjectDetail{}, ErrProjectNotFound
	}
	reqs, err := u.requiredSkills.FindByProjectID(ctx, id)
	if err != nil {
		return ProjectDetail{}, ErrInternal
	}
	return ProjectDetail{Project: p, RequiredSkills: reqs}, nil
}

func (u *Projects) Create(ctx context.Context, in ProjectInput) (repository.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return repository.Project{}, ErrInvalidInput
	}
	rng, err := interval.New(in.StartDate, in.EndDate)
	if err != nil {
		return repository.Project{}, ErrInvalidInput
	}

	p := repository.Project{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		StartDate:   rng.Start,
		EndDate:     rng.End,
	}
	if err := u.projects.Create(ctx, p); err != nil {
		return repository.Project{}, ErrInternal
	}
	return p, nil
}

func (u *Projects) SetRequiredSkill(ctx context.Context, projectID uuid.UUID, in RequiredSkillInput) error {
	if projectID == uuid.Nil {
		return ErrProjectNotFound
	}
	if !in.MinimumProficiency.Valid() {
		return ErrInvalidInput
	}

	exists, err := u.projects.ExistsByID(ctx, projectID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrProjectNotFound
	}

	_, found, err := u.catalog.GetByID(ctx, in.SkillID)
	if err != nil {
		return ErrInternal
	}
	if !found {
		return ErrSkillNotFound
	}

	if err := u.requiredSkills.Upsert(ctx, projectID, in.SkillID, in.MinimumProficiency); err != nil {
		return ErrInternal
	}
	if u.invalidate != nil {
		u.invalidate(ctx)
	}
	return nil
}
