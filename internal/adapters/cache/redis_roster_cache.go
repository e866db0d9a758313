package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"route-roster-service/internal/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed implementation of the RosterCache port.
type RedisRosterCache struct {
	Client redis.Cmdable
}

func NewRedisRosterCache(client redis.Cmdable) *RedisRosterCache {
	return &RedisRosterCache{Client: client}
}

type cachedAssignment struct {
	Date  domain.Date `json:"date"`
	Route string      `json:"route"`
}

func rosterKey(k domain.RosterKey) string {
	return fmt.Sprintf("roster:%s:%s:%s:%s", k.VehicleID, k.Schedule, k.Window.Start, k.Window.End)
}

// Return the cached assignments for a vehicle, schedule and window.
func (c *RedisRosterCache) Get(ctx context.Context, k domain.RosterKey) ([]domain.Assignment, bool, error) {
	if c.Client == nil {
		return nil, false, errors.New("roster cache: client is nil")
	}

	key := rosterKey(k)
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("roster cache get %q: %w", key, err)
	}

	var entries []cachedAssignment
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("roster cache get %q: decode: %w", key, err)
	}

	// A window always holds one entry per day; anything else is stale.
	if len(entries) != k.Window.Days() {
		return nil, false, nil
	}

	out := make([]domain.Assignment, len(entries))
	for i, e := range entries {
		out[i] = domain.Assignment{Date: e.Date, Route: e.Route}
	}
	return out, true, nil
}

// Store the assignments for a vehicle, schedule and window.
func (c *RedisRosterCache) Put(
	ctx context.Context,
	k domain.RosterKey,
	assignments []domain.Assignment,
	ttl time.Duration,
) error {
	if c.Client == nil {
		return errors.New("roster cache: client is nil")
	}

	entries := make([]cachedAssignment, len(assignments))
	for i, a := range assignments {
		entries[i] = cachedAssignment{Date: a.Date, Route: a.Route}
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("roster cache put: encode: %w", err)
	}

	key := rosterKey(k)
	if err := c.Client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("roster cache put %q: %w", key, err)
	}

	return nil
}
