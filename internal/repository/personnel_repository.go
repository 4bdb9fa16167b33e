package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crewplan/internal/database"
	"crewplan/internal/domain/scale"
)

type Personnel struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Experience scale.Experience
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type PersonnelRepository interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (Personnel, bool, error)
	ListAll(ctx context.Context) ([]Personnel, error)
	Create(ctx context.Context, p Personnel) error
}

type PostgresPersonnelRepository struct {
	db database.DB
}

func NewPostgresPersonnelRepository(db database.DB) *PostgresPersonnelRepository {
	return &PostgresPersonnelRepository{db: db}
}

func (r *PostgresPersonnelRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM personnel WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresPersonnelRepository) GetByID(ctx context.Context, id uuid.UUID) (Personnel, bool, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, experience_level, created_at, updated_at FROM personnel WHERE id = $1`,
		id,
	)
	if err != nil {
		return Personnel{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return Personnel{}, false, rows.Err()
	}
	p, err := scanPersonnel(rows)
	if err != nil {
		return Personnel{}, false, err
	}
	return p, true, nil
}

func (r *PostgresPersonnelRepository) ListAll(ctx context.Context) ([]Personnel, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, experience_level, created_at, updated_at FROM personnel ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Personnel, 0)
	for rows.Next() {
		p, err := scanPersonnel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPersonnelRepository) Create(ctx context.Context, p Personnel) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO personnel (id, name, email, experience_level) VALUES ($1, $2, $3, $4)`,
		p.ID, p.Name, p.Email, int(p.Experience),
	)
	return err
}

type personnelRow interface {
	Scan(dest ...any) error
}

func scanPersonnel(row personnelRow) (Personnel, error) {
	var p Personnel
	var level int16
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &level, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return Personnel{}, err
	}
	p.Experience = scale.Experience(level)
	return p, nil
}
