package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"crewplan/internal/database"
	"crewplan/internal/domain/allocation"
)

type mockTx struct {
	committed  bool
	rolledBack bool
}

func (t *mockTx) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (t *mockTx) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}
func (t *mockTx) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (t *mockTx) Commit(context.Context) error {
	t.committed = true
	return nil
}
func (t *mockTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type mockDB struct {
	tx       *mockTx
	beginErr error
}

func (d *mockDB) Ping(context.Context) error { return nil }
func (d *mockDB) Close() error               { return nil }
func (d *mockDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}
func (d *mockDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}
func (d *mockDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (d *mockDB) Begin(context.Context) (database.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}
func (d *mockDB) SQLDB() *sql.DB { return nil }

func TestAllocationUsecase_Propose_RejectsOverCapacity(t *testing.T) {
	person := uuid.New()
	tx := &mockTx{}
	repo := &mockAllocationRepo{existing: []allocation.Allocation{{
		ID:          uuid.New(),
		PersonnelID: person,
		Percentage:  60,
		Range:       testRange(t, "2025-03-01", "2025-04-30"),
	}}}

	uc := NewAllocationUsecase(
		&mockDB{tx: tx},
		&mockProjectRepo{found: true},
		&mockPersonnelRepo{exists: true},
		repo,
		nil,
		nil,
	)

	_, err := uc.Propose(context.Background(), AllocationInput{
		ProjectID:   uuid.New(),
		PersonnelID: person,
		Percentage:  50,
		Start:       date(t, "2025-04-01"),
		End:         date(t, "2025-05-31"),
	})

	var conflict *CapacityConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected CapacityConflictError, got %v", err)
	}
	if conflict.Total != 110 {
		t.Fatalf("expected total 110, got %d", conflict.Total)
	}
	if len(conflict.Conflicts) != 1 {
		t.Fatalf("expected one conflicting allocation, got %d", len(conflict.Conflicts))
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no insert on rejection")
	}
	if tx.committed {
		t.Fatalf("expected no commit on rejection")
	}
	if !tx.rolledBack {
		t.Fatalf("expected rollback on rejection")
	}
}

func TestAllocationUsecase_Propose_AcceptsAndNotifies(t *testing.T) {
	person := uuid.New()
	tx := &mockTx{}
	repo := &mockAllocationRepo{existing: []allocation.Allocation{{
		ID:          uuid.New(),
		PersonnelID: person,
		Percentage:  60,
		Range:       testRange(t, "2025-03-01", "2025-04-30"),
	}}}

	invalidated := 0
	var notified []allocation.Allocation
	uc := NewAllocationUsecase(
		&mockDB{tx: tx},
		&mockProjectRepo{found: true},
		&mockPersonnelRepo{exists: true},
		repo,
		func(context.Context) { invalidated++ },
		func(a allocation.Allocation) { notified = append(notified, a) },
	)

	a, err := uc.Propose(context.Background(), AllocationInput{
		ProjectID:   uuid.New(),
		PersonnelID: person,
		Percentage:  40,
		Start:       date(t, "2025-04-01"),
		End:         date(t, "2025-05-31"),
		Role:        "Backend",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Fatalf("expected an assigned allocation id")
	}
	if !tx.committed {
		t.Fatalf("expected commit")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
	if invalidated != 1 {
		t.Fatalf("expected one cache invalidation, got %d", invalidated)
	}
	if len(notified) != 1 || notified[0].ID != a.ID {
		t.Fatalf("expected notification for the accepted allocation")
	}
}

func TestAllocationUsecase_Propose_DisjointIgnoresExisting(t *testing.T) {
	person := uuid.New()
	tx := &mockTx{}
	repo := &mockAllocationRepo{existing: []allocation.Allocation{{
		ID:          uuid.New(),
		PersonnelID: person,
		Percentage:  100,
		Range:       testRange(t, "2025-01-01", "2025-02-28"),
	}}}

	uc := NewAllocationUsecase(
		&mockDB{tx: tx},
		&mockProjectRepo{found: true},
		&mockPersonnelRepo{exists: true},
		repo,
		nil,
		nil,
	)

	if _, err := uc.Propose(context.Background(), AllocationInput{
		ProjectID:   uuid.New(),
		PersonnelID: person,
		Percentage:  100,
		Start:       date(t, "2025-03-01"),
		End:         date(t, "2025-03-31"),
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !tx.committed {
		t.Fatalf("expected commit for disjoint windows")
	}
}

func TestAllocationUsecase_Propose_UnknownProject(t *testing.T) {
	uc := NewAllocationUsecase(
		&mockDB{tx: &mockTx{}},
		&mockProjectRepo{found: false},
		&mockPersonnelRepo{exists: true},
		&mockAllocationRepo{},
		nil,
		nil,
	)

	_, err := uc.Propose(context.Background(), AllocationInput{
		ProjectID:   uuid.New(),
		PersonnelID: uuid.New(),
		Percentage:  50,
		Start:       date(t, "2025-04-01"),
		End:         date(t, "2025-05-31"),
	})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestAllocationUsecase_Propose_InvalidPercentage(t *testing.T) {
	uc := NewAllocationUsecase(
		&mockDB{tx: &mockTx{}},
		&mockProjectRepo{found: true},
		&mockPersonnelRepo{exists: true},
		&mockAllocationRepo{},
		nil,
		nil,
	)

	_, err := uc.Propose(context.Background(), AllocationInput{
		ProjectID:   uuid.New(),
		PersonnelID: uuid.New(),
		Percentage:  101,
		Start:       date(t, "2025-04-01"),
		End:         date(t, "2025-05-31"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
