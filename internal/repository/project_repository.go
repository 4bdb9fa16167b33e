package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crewplan/internal/database"
)

type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProjectRepository interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (Project, bool, error)
	ListAll(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, p Project) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (Project, bool, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, start_date, end_date, created_at, updated_at FROM projects WHERE id = $1`,
		id,
	)
	if err != nil {
		return Project{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return Project{}, false, rows.Err()
	}
	var p Project
	if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return Project{}, false, err
	}
	return p, true, nil
}

func (r *PostgresProjectRepository) ListAll(ctx context.Context) ([]Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, start_date, end_date, created_at, updated_at FROM projects ORDER BY start_date ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p Project) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO projects (id, name, description, start_date, end_date) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.Description, p.StartDate, p.EndDate,
	)
	return err
}
