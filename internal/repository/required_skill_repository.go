package repository

import (
	"context"

	"github.com/google/uuid"

	"crewplan/internal/database"
	"crewplan/internal/domain/scale"
)

type RequiredSkill struct {
	SkillID            uuid.UUID
	SkillName          string
	MinimumProficiency scale.Proficiency
}

type RequiredSkillRepository interface {
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]RequiredSkill, error)
	Upsert(ctx context.Context, projectID, skillID uuid.UUID, minimum scale.Proficiency) error
}

type PostgresRequiredSkillRepository struct {
	db database.DB
}

func NewPostgresRequiredSkillRepository(db database.DB) *PostgresRequiredSkillRepository {
	return &PostgresRequiredSkillRepository{db: db}
}

func (r *PostgresRequiredSkillRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]RequiredSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT rs.skill_id, s.name, rs.minimum_proficiency
		 FROM project_required_skills rs
		 JOIN skills s ON s.id = rs.skill_id
		 WHERE rs.project_id = $1
		 ORDER BY s.name ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RequiredSkill, 0)
	for rows.Next() {
		var it RequiredSkill
		var level int16
		if err := rows.Scan(&it.SkillID, &it.SkillName, &level); err != nil {
			return nil, err
		}
		it.MinimumProficiency = scale.Proficiency(level)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRequiredSkillRepository) Upsert(ctx context.Context, projectID, skillID uuid.UUID, minimum scale.Proficiency) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO project_required_skills (id, project_id, skill_id, minimum_proficiency)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (project_id, skill_id)
		 DO UPDATE SET minimum_proficiency = EXCLUDED.minimum_proficiency`,
		uuid.New(), projectID, skillID, int(minimum),
	)
	return err
}
