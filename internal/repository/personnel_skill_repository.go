package repository

import (
	"context"

	"github.com/google/uuid"

	"crewplan/internal/database"
	"crewplan/internal/domain/scale"
)

type PersonnelSkill struct {
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel scale.Proficiency
	YearsExperience  int
}

type PersonnelSkillRepository interface {
	FindByPersonnelID(ctx context.Context, personnelID uuid.UUID) ([]PersonnelSkill, error)
	FindByPersonnelIDs(ctx context.Context, personnelIDs []uuid.UUID) (map[uuid.UUID][]PersonnelSkill, error)
	Upsert(ctx context.Context, personnelID, skillID uuid.UUID, level scale.Proficiency, years int) error
}

type PostgresPersonnelSkillRepository struct {
	db database.DB
}

func NewPostgresPersonnelSkillRepository(db database.DB) *PostgresPersonnelSkillRepository {
	return &PostgresPersonnelSkillRepository{db: db}
}

func (r *PostgresPersonnelSkillRepository) FindByPersonnelID(ctx context.Context, personnelID uuid.UUID) ([]PersonnelSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ps.skill_id, s.name, ps.proficiency_level, ps.years_experience
		 FROM personnel_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 WHERE ps.personnel_id = $1
		 ORDER BY s.name ASC`,
		personnelID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PersonnelSkill, 0)
	for rows.Next() {
		var it PersonnelSkill
		var level int16
		if err := rows.Scan(&it.SkillID, &it.SkillName, &level, &it.YearsExperience); err != nil {
			return nil, err
		}
		it.ProficiencyLevel = scale.Proficiency(level)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPersonnelSkillRepository) FindByPersonnelIDs(ctx context.Context, personnelIDs []uuid.UUID) (map[uuid.UUID][]PersonnelSkill, error) {
	out := make(map[uuid.UUID][]PersonnelSkill, len(personnelIDs))
	if len(personnelIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT ps.personnel_id, ps.skill_id, s.name, ps.proficiency_level, ps.years_experience
		 FROM personnel_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 WHERE ps.personnel_id = ANY($1)
		 ORDER BY s.name ASC`,
		personnelIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pid uuid.UUID
		var it PersonnelSkill
		var level int16
		if err := rows.Scan(&pid, &it.SkillID, &it.SkillName, &level, &it.YearsExperience); err != nil {
			return nil, err
		}
		it.ProficiencyLevel = scale.Proficiency(level)
		out[pid] = append(out[pid], it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPersonnelSkillRepository) Upsert(ctx context.Context, personnelID, skillID uuid.UUID, level scale.Proficiency, years int) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO personnel_skills (id, personnel_id, skill_id, proficiency_level, years_experience)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (personnel_id, skill_id)
		 DO UPDATE SET proficiency_level = EXCLUDED.proficiency_level, years_experience = EXCLUDED.years_experience`,
		uuid.New(), personnelID, skillID, int(level), years,
	)
	return err
}
