package ports

import (
	"context"
	"route-roster-service/internal/domain"
)

// Port: a boundary for the sign inventory ledger storage.
type MovementRepository interface {
	// Return every movement, newest first.
	ListMovements(ctx context.Context) ([]domain.Movement, error)
	// Return one movement, or domain.ErrNotFound.
	GetMovement(ctx context.Context, id int64) (domain.Movement, error)
	// Store a new movement and return its id.
	InsertMovement(ctx context.Context, m domain.Movement) (int64, error)
	// Replace a stored movement, or return domain.ErrNotFound.
	UpdateMovement(ctx context.Context, m domain.Movement) error
	DeleteAllMovements(ctx context.Context) (int64, error)
}
