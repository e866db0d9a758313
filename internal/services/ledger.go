package services

import (
	"context"
	"fmt"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/platform/obs"
	"route-roster-service/internal/ports"
	"time"
)

// Ledger applies the sign inventory rules on top of a MovementRepository.
type Ledger struct {
	Repo     ports.MovementRepository
	UnitCost float64
}

func (l *Ledger) List(ctx context.Context) ([]domain.Movement, error) {
	ms, err := l.Repo.ListMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return ms, nil
}

// Add records a new movement dated now.
func (l *Ledger) Add(ctx context.Context, in domain.MovementInput, now time.Time) (_ domain.Movement, err error) {
	defer obs.Time(ctx, "ledger.Add")(&err)

	m, err := in.Normalize(l.UnitCost)
	if err != nil {
		return domain.Movement{}, fmt.Errorf("add movement: %w", err)
	}
	m.Date = now

	id, err := l.Repo.InsertMovement(ctx, m)
	if err != nil {
		return domain.Movement{}, fmt.Errorf("add movement: insert: %w", err)
	}
	m.ID = id
	return m, nil
}

// Update replaces the editable fields of a movement. Its date is kept and the
// profit is recomputed from the new values.
func (l *Ledger) Update(ctx context.Context, id int64, in domain.MovementInput) (domain.Movement, error) {
	current, err := l.Repo.GetMovement(ctx, id)
	if err != nil {
		return domain.Movement{}, fmt.Errorf("update movement id=%d: %w", id, err)
	}

	m, err := in.Normalize(l.UnitCost)
	if err != nil {
		return domain.Movement{}, fmt.Errorf("update movement id=%d: %w", id, err)
	}
	m.ID = current.ID
	m.Date = current.Date

	if err := l.Repo.UpdateMovement(ctx, m); err != nil {
		return domain.Movement{}, fmt.Errorf("update movement id=%d: %w", id, err)
	}
	return m, nil
}

// Pay settles a pending or owed exit and realizes its profit.
func (l *Ledger) Pay(ctx context.Context, id int64) (domain.Movement, error) {
	return l.transition(ctx, id, domain.StatusPaid)
}

// ReturnToWarehouse cancels a pending or owed exit; its stock counts as in
// the warehouse again.
func (l *Ledger) ReturnToWarehouse(ctx context.Context, id int64) (domain.Movement, error) {
	return l.transition(ctx, id, domain.StatusCancelled)
}

func (l *Ledger) transition(ctx context.Context, id int64, to domain.MovementStatus) (domain.Movement, error) {
	m, err := l.Repo.GetMovement(ctx, id)
	if err != nil {
		return domain.Movement{}, fmt.Errorf("set movement id=%d status=%q: %w", id, to, err)
	}

	if !m.Open() {
		return domain.Movement{}, fmt.Errorf(
			"set movement id=%d status=%q: %w: movement is %q",
			id, to, domain.ErrInvalidTransition, m.Status,
		)
	}

	m.Status = to
	m.Profit = m.RealizedProfit()

	if err := l.Repo.UpdateMovement(ctx, m); err != nil {
		return domain.Movement{}, fmt.Errorf("set movement id=%d status=%q: %w", id, to, err)
	}
	return m, nil
}

// Clear deletes the whole ledger. The caller must confirm explicitly.
func (l *Ledger) Clear(ctx context.Context, confirmed bool) (int64, error) {
	if !confirmed {
		return 0, fmt.Errorf("clear movements: %w", domain.ErrConfirmationRequired)
	}

	n, err := l.Repo.DeleteAllMovements(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear movements: %w", err)
	}
	return n, nil
}

func (l *Ledger) Summary(ctx context.Context) (domain.LedgerSummary, error) {
	ms, err := l.Repo.ListMovements(ctx)
	if err != nil {
		return domain.LedgerSummary{}, fmt.Errorf("ledger summary: %w", err)
	}
	return domain.Summarize(ms, l.UnitCost), nil
}
