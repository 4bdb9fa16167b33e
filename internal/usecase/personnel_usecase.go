package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"crewplan/internal/domain/scale"
	"crewplan/internal/repository"
)

type PersonnelInput struct {
	Name       string
	Email      string
	Experience scale.Experience
}

type SkillAssignmentInput struct {
	SkillID         uuid.UUID
	Proficiency     scale.Proficiency
	YearsExperience int
}

// PersonnelDetail bundles a personnel with their skill profile.
type PersonnelDetail struct {
	Personnel repository.Personnel
	Skills    []repository.PersonnelSkill
}

type PersonnelUsecase interface {
	List(ctx context.Context) ([]repository.Personnel, error)
	Get(ctx context.Context, id uuid.UUID) (PersonnelDetail, error)
	Create(ctx context.Context, in PersonnelInput) (repository.Personnel, error)
	AssignSkill(ctx context.Context, personnelID uuid.UUID, in SkillAssignmentInput) error
}

type PersonnelService struct {
	personnel  repository.PersonnelRepository
	skills     repository.PersonnelSkillRepository
	catalog    repository.SkillRepository
	invalidate func(ctx context.Context)
}

func NewPersonnelUsecase(
	personnel repository.PersonnelRepository,
	skills repository.PersonnelSkillRepository,
	catalog repository.SkillRepository,
	invalidate func(ctx context.Context),
) *PersonnelService {
	return &PersonnelService{personnel: personnel, skills: skills, catalog: catalog, invalidate: invalidate}
}

func (u *PersonnelService) List(ctx context.Context) ([]repository.Personnel, error) {
	out, err := u.personnel.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *PersonnelService) Get(ctx context.Context, id uuid.UUID) (PersonnelDetail, error) {
	if id == uuid.Nil {
		return PersonnelDetail{}, ErrPersonnelNotFound
	}
	p, found, err := u.personnel.GetByID(ctx, id)
	if err != nil {
		return PersonnelDetail{}, ErrInternal
	}
	if !found {
		return PersonnelDetail{}, ErrPersonnelNotFound
	}
	skills, err := u.skills.FindByPersonnelID(ctx, id)
	if err != nil {
		return PersonnelDetail{}, ErrInternal
	}
	return PersonnelDetail{Personnel: p, Skills: skills}, nil
}

func (u *PersonnelService) Create(ctx context.Context, in PersonnelInput) (repository.Personnel, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" {
		return repository.Personnel{}, ErrInvalidInput
	}
	if in.Experience != scale.ExperienceUnknown && !in.Experience.Valid() {
		return repository.Personnel{}, ErrInvalidInput
	}

	p := repository.Personnel{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		Experience: in.Experience,
	}
	if err := u.personnel.Create(ctx, p); err != nil {
		return repository.Personnel{}, ErrInternal
	}
	return p, nil
}

func (u *PersonnelService) AssignSkill(ctx context.Context, personnelID uuid.UUID, in SkillAssignmentInput) error {
	if personnelID == uuid.Nil {
		return ErrPersonnelNotFound
	}
	if !in.Proficiency.Valid() || in.YearsExperience < 0 {
		return ErrInvalidInput
	}

	exists, err := u.personnel.ExistsByID(ctx, personnelID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrPersonnelNotFound
	}

	_, found, err := u.catalog.GetByID(ctx, in.SkillID)
	if err != nil {
		return ErrInternal
	}
	if !found {
		return ErrSkillNotFound
	}

	if err := u.skills.Upsert(ctx, personnelID, in.SkillID, in.Proficiency, in.YearsExperience); err != nil {
		return ErrInternal
	}
	if u.invalidate != nil {
		u.invalidate(ctx)
	}
	return nil
}
