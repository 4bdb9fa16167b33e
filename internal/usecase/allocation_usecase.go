package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crewplan/internal/database"
	"crewplan/internal/domain/allocation"
	"crewplan/internal/domain/interval"
	"crewplan/internal/repository"
)

type AllocationInput struct {
	ProjectID   uuid.UUID
	PersonnelID uuid.UUID
	Percentage  int
	Start       time.Time
	End         time.Time
	Role        string
}

type AllocationUsecase interface {
	Propose(ctx context.Context, in AllocationInput) (allocation.Allocation, error)
	ListByPersonnel(ctx context.Context, personnelID uuid.UUID) ([]allocation.Allocation, error)
}

type Allocations struct {
	db          database.DB
	projects    repository.ProjectRepository
	personnel   repository.PersonnelRepository
	allocations repository.AllocationRepository
	invalidate  func(ctx context.Context)
	notify      func(a allocation.Allocation)
}

func NewAllocationUsecase(
	db database.DB,
	projects repository.ProjectRepository,
	personnel repository.PersonnelRepository,
	allocations repository.AllocationRepository,
	invalidate func(ctx context.Context),
	notify func(a allocation.Allocation),
) *Allocations {
	return &Allocations{
		db:          db,
		projects:    projects,
		personnel:   personnel,
		allocations: allocations,
		invalidate:  invalidate,
		notify:      notify,
	}
}

// Propose validates the input, then runs the capacity check and the insert
// inside one transaction holding a lock on the personnel row, so concurrent
// proposals for the same person serialize instead of both passing against a
// stale snapshot.
func (u *Allocations) Propose(ctx context.Context, in AllocationInput) (allocation.Allocation, error) {
	if in.ProjectID == uuid.Nil {
		return allocation.Allocation{}, ErrProjectNotFound
	}
	if in.PersonnelID == uuid.Nil {
		return allocation.Allocation{}, ErrPersonnelNotFound
	}
	if in.Percentage < 0 || in.Percentage > 100 {
		return allocation.Allocation{}, ErrInvalidInput
	}
	rng, err := interval.New(in.Start, in.End)
	if err != nil {
		return allocation.Allocation{}, ErrInvalidInput
	}

	exists, err := u.projects.ExistsByID(ctx, in.ProjectID)
	if err != nil {
		return allocation.Allocation{}, ErrInternal
	}
	if !exists {
		return allocation.Allocation{}, ErrProjectNotFound
	}
	exists, err = u.personnel.ExistsByID(ctx, in.PersonnelID)
	if err != nil {
		return allocation.Allocation{}, ErrInternal
	}
	if !exists {
		return allocation.Allocation{}, ErrPersonnelNotFound
	}

	proposed := allocation.Allocation{
		ID:          uuid.New(),
		ProjectID:   in.ProjectID,
		PersonnelID: in.PersonnelID,
		Percentage:  in.Percentage,
		Range:       rng,
		Role:        in.Role,
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return allocation.Allocation{}, ErrInternal
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	existing, err := u.allocations.FindByPersonnelIDForUpdate(ctx, tx, in.PersonnelID)
	if err != nil {
		return allocation.Allocation{}, ErrInternal
	}

	decision := allocation.Check(existing, proposed)
	if !decision.Accepted {
		return allocation.Allocation{}, &CapacityConflictError{
			Total:     decision.Total,
			Conflicts: decision.Conflicts,
		}
	}

	if err := u.allocations.CreateInTx(ctx, tx, proposed); err != nil {
		return allocation.Allocation{}, ErrInternal
	}
	if err := tx.Commit(ctx); err != nil {
		return allocation.Allocation{}, ErrInternal
	}

	if u.invalidate != nil {
		u.invalidate(ctx)
	}
	if u.notify != nil {
		u.notify(proposed)
	}
	return proposed, nil
}

func (u *Allocations) ListByPersonnel(ctx context.Context, personnelID uuid.UUID) ([]allocation.Allocation, error) {
	if personnelID == uuid.Nil {
		return nil, ErrPersonnelNotFound
	}
	out, err := u.allocations.FindByPersonnelID(ctx, personnelID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
