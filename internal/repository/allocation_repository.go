package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crewplan/internal/database"
	"crewplan/internal/domain/allocation"
	"crewplan/internal/domain/interval"
)

type AllocationRepository interface {
	FindByPersonnelID(ctx context.Context, personnelID uuid.UUID) ([]allocation.Allocation, error)

	// FindByPersonnelIDForUpdate reads inside the given transaction with a
	// row lock on the personnel, serializing concurrent proposals for the
	// same person.
	FindByPersonnelIDForUpdate(ctx context.Context, tx database.Tx, personnelID uuid.UUID) ([]allocation.Allocation, error)
	CreateInTx(ctx context.Context, tx database.Tx, a allocation.Allocation) error
}

type PostgresAllocationRepository struct {
	db database.DB
}

func NewPostgresAllocationRepository(db database.DB) *PostgresAllocationRepository {
	return &PostgresAllocationRepository{db: db}
}

const allocationColumns = `id, project_id, personnel_id, allocation_percentage, start_date, end_date, role`

func (r *PostgresAllocationRepository) FindByPersonnelID(ctx context.Context, personnelID uuid.UUID) ([]allocation.Allocation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+allocationColumns+` FROM allocations WHERE personnel_id = $1 ORDER BY start_date ASC`,
		personnelID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAllocations(rows)
}

func (r *PostgresAllocationRepository) FindByPersonnelIDForUpdate(ctx context.Context, tx database.Tx, personnelID uuid.UUID) ([]allocation.Allocation, error) {
	// Lock the personnel row first so two proposals cannot both read a stale
	// allocation set and together exceed capacity.
	if _, err := tx.Exec(ctx, `SELECT 1 FROM personnel WHERE id = $1 FOR UPDATE`, personnelID); err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx,
		`SELECT `+allocationColumns+` FROM allocations WHERE personnel_id = $1 ORDER BY start_date ASC`,
		personnelID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAllocations(rows)
}

func (r *PostgresAllocationRepository) CreateInTx(ctx context.Context, tx database.Tx, a allocation.Allocation) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO allocations (id, project_id, personnel_id, allocation_percentage, start_date, end_date, role)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.ProjectID, a.PersonnelID, a.Percentage, a.Range.Start, a.Range.End, a.Role,
	)
	return err
}

func scanAllocations(rows database.Rows) ([]allocation.Allocation, error) {
	out := make([]allocation.Allocation, 0)
	for rows.Next() {
		var a allocation.Allocation
		var start, end time.Time
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.PersonnelID, &a.Percentage, &start, &end, &a.Role); err != nil {
			return nil, err
		}
		rng, err := interval.New(start, end)
		if err != nil {
			return nil, err
		}
		a.Range = rng
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
