package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crewplan/internal/database"
	"crewplan/internal/domain/availability"
	"crewplan/internal/domain/interval"
)

type AvailabilityRepository interface {
	FindByPersonnelID(ctx context.Context, personnelID uuid.UUID) ([]availability.Period, error)
	FindByPersonnelIDs(ctx context.Context, personnelIDs []uuid.UUID) (map[uuid.UUID][]availability.Period, error)
	Create(ctx context.Context, p availability.Period) error
	Update(ctx context.Context, p availability.Period) (bool, error)
}

type PostgresAvailabilityRepository struct {
	db database.DB
}

func NewPostgresAvailabilityRepository(db database.DB) *PostgresAvailabilityRepository {
	return &PostgresAvailabilityRepository{db: db}
}

func (r *PostgresAvailabilityRepository) FindByPersonnelID(ctx context.Context, personnelID uuid.UUID) ([]availability.Period, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, personnel_id, start_date, end_date, availability_percentage, notes
		 FROM availability_periods
		 WHERE personnel_id = $1
		 ORDER BY start_date ASC`,
		personnelID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPeriods(rows)
}

func (r *PostgresAvailabilityRepository) FindByPersonnelIDs(ctx context.Context, personnelIDs []uuid.UUID) (map[uuid.UUID][]availability.Period, error) {
	out := make(map[uuid.UUID][]availability.Period, len(personnelIDs))
	if len(personnelIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, personnel_id, start_date, end_date, availability_percentage, notes
		 FROM availability_periods
		 WHERE personnel_id = ANY($1)
		 ORDER BY start_date ASC`,
		personnelIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	periods, err := scanPeriods(rows)
	if err != nil {
		return nil, err
	}
	for _, p := range periods {
		out[p.PersonnelID] = append(out[p.PersonnelID], p)
	}
	return out, nil
}

func (r *PostgresAvailabilityRepository) Create(ctx context.Context, p availability.Period) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO availability_periods (id, personnel_id, start_date, end_date, availability_percentage, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.PersonnelID, p.Range.Start, p.Range.End, p.Percentage, p.Notes,
	)
	return err
}

func (r *PostgresAvailabilityRepository) Update(ctx context.Context, p availability.Period) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE availability_periods
		 SET start_date = $2, end_date = $3, availability_percentage = $4, notes = $5
		 WHERE id = $1`,
		p.ID, p.Range.Start, p.Range.End, p.Percentage, p.Notes,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanPeriods(rows database.Rows) ([]availability.Period, error) {
	out := make([]availability.Period, 0)
	for rows.Next() {
		var p availability.Period
		var start, end time.Time
		if err := rows.Scan(&p.ID, &p.PersonnelID, &start, &end, &p.Percentage, &p.Notes); err != nil {
			return nil, err
		}
		rng, err := interval.New(start, end)
		if err != nil {
			return nil, err
		}
		p.Range = rng
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
