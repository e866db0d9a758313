package ports

import (
	"context"
	"route-roster-service/internal/domain"
	"time"
)

// Optional store for generated rosters, keyed by vehicle, schedule
// fingerprint and window.
type RosterCache interface {
	// Return the cached assignments and whether the key was present.
	Get(ctx context.Context, key domain.RosterKey) ([]domain.Assignment, bool, error)
	Put(ctx context.Context, key domain.RosterKey, assignments []domain.Assignment, ttl time.Duration) error
}
