package repository

import (
	"context"

	"github.com/google/uuid"

	"crewplan/internal/database"
)

type Skill struct {
	ID       uuid.UUID
	Name     string
	Category string
}

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (Skill, bool, error)
	CreateSkill(ctx context.Context, name, category string) (Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (Skill, bool, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category FROM skills WHERE id = $1`, id)
	if err != nil {
		return Skill{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return Skill{}, false, rows.Err()
	}
	var s Skill
	if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
		return Skill{}, false, err
	}
	return s, true, nil
}

func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, name, category string) (Skill, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `INSERT INTO skills (id, name, category) VALUES ($1, $2, $3)`, id, name, category)
	if err != nil {
		return Skill{}, err
	}
	return Skill{ID: id, Name: name, Category: category}, nil
}
