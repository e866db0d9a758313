package services

import (
	"context"
	"route-roster-service/internal/domain"
	"sort"
	"time"
)

type fakeSource map[string]domain.RouteSchedule

func (f fakeSource) Schedule(_ context.Context, id string) (domain.RouteSchedule, error) {
	s, ok := f[id]
	if !ok {
		return domain.RouteSchedule{}, domain.ErrUnknownVehicle
	}
	return s, nil
}

func (f fakeSource) Vehicles(context.Context) ([]string, error) {
	ids := make([]string, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

type fakeCache struct {
	entries map[string][]domain.Assignment
	gets    int
	puts    int
	err     error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]domain.Assignment{}}
}

func (c *fakeCache) key(k domain.RosterKey) string {
	return k.VehicleID + "|" + k.Schedule + "|" + k.Window.Start.String() + "|" + k.Window.End.String()
}

func (c *fakeCache) Get(_ context.Context, k domain.RosterKey) ([]domain.Assignment, bool, error) {
	c.gets++
	if c.err != nil {
		return nil, false, c.err
	}
	v, ok := c.entries[c.key(k)]
	return v, ok, nil
}

func (c *fakeCache) Put(_ context.Context, k domain.RosterKey, as []domain.Assignment, _ time.Duration) error {
	c.puts++
	if c.err != nil {
		return c.err
	}
	c.entries[c.key(k)] = as
	return nil
}

type memInspectionRepo struct {
	items  []domain.InspectionItem
	unit   *domain.UnitInfo
	nextID int64
}

func (r *memInspectionRepo) ListItems(_ context.Context, order domain.InspectionOrder) ([]domain.InspectionItem, error) {
	out := append([]domain.InspectionItem(nil), r.items...)
	sort.SliceStable(out, func(i, j int) bool {
		if order == domain.OrderByModified {
			return out[i].ModifiedAt.Before(out[j].ModifiedAt)
		}
		return out[i].Element < out[j].Element
	})
	return out, nil
}

func (r *memInspectionRepo) InsertItems(_ context.Context, items []domain.InspectionItem) (int, error) {
	added := 0
	for _, it := range items {
		exists := false
		for _, cur := range r.items {
			if cur.Category == it.Category && cur.Element == it.Element {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		r.nextID++
		it.ID = r.nextID
		r.items = append(r.items, it)
		added++
	}
	return added, nil
}

func (r *memInspectionRepo) UpdateItem(_ context.Context, id int64, p domain.InspectionItemPatch, at time.Time) (domain.InspectionItem, error) {
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		if p.OK != nil {
			r.items[i].OK = *p.OK
		}
		if p.Notes != nil {
			r.items[i].Notes = *p.Notes
		}
		r.items[i].ModifiedAt = at
		return r.items[i], nil
	}
	return domain.InspectionItem{}, domain.ErrNotFound
}

func (r *memInspectionRepo) GetUnit(context.Context) (domain.UnitInfo, bool, error) {
	if r.unit == nil {
		return domain.UnitInfo{}, false, nil
	}
	return *r.unit, true, nil
}

func (r *memInspectionRepo) PutUnit(_ context.Context, u domain.UnitInfo) error {
	r.unit = &u
	return nil
}

type memMovementRepo struct {
	movements []domain.Movement
	nextID    int64
}

func (r *memMovementRepo) ListMovements(context.Context) ([]domain.Movement, error) {
	out := append([]domain.Movement(nil), r.movements...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *memMovementRepo) GetMovement(_ context.Context, id int64) (domain.Movement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Movement{}, domain.ErrNotFound
}

func (r *memMovementRepo) InsertMovement(_ context.Context, m domain.Movement) (int64, error) {
	r.nextID++
	m.ID = r.nextID
	r.movements = append(r.movements, m)
	return m.ID, nil
}

func (r *memMovementRepo) UpdateMovement(_ context.Context, m domain.Movement) error {
	for i := range r.movements {
		if r.movements[i].ID == m.ID {
			r.movements[i] = m
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memMovementRepo) DeleteAllMovements(context.Context) (int64, error) {
	n := int64(len(r.movements))
	r.movements = nil
	return n, nil
}
