package usecase

import (
	"context"
	"strings"

	"crewplan/internal/repository"
)

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]repository.Skill, error)
	CreateSkill(ctx context.Context, name, category string) (repository.Skill, error)
}

type Skills struct {
	skills repository.SkillRepository
}

func NewSkillUsecase(skills repository.SkillRepository) *Skills {
	return &Skills{skills: skills}
}

func (u *Skills) ListSkills(ctx context.Context) ([]repository.Skill, error) {
	out, err := u.skills.GetAllSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Skills) CreateSkill(ctx context.Context, name, category string) (repository.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return repository.Skill{}, ErrInvalidInput
	}
	s, err := u.skills.CreateSkill(ctx, name, strings.TrimSpace(category))
	if err != nil {
		return repository.Skill{}, ErrInternal
	}
	return s, nil
}
