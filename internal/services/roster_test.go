package services

import (
	"context"
	"errors"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/platform/metrics"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRosterService(t *testing.T, cache *fakeCache) *RosterService {
	t.Helper()
	es, err := LookupLocale("es")
	require.NoError(t, err)
	rec, err := metrics.New(nil)
	require.NoError(t, err)

	svc := &RosterService{
		Source:   fakeSource{"138": abSchedule()},
		CacheTTL: time.Hour,
		Policy:   domain.WindowPolicy{LookbackDays: 5, LookaheadDays: 30, MaxDays: 366},
		Locale:   es,
		Metrics:  rec,
	}
	if cache != nil {
		svc.Cache = cache
	}
	return svc
}

func TestRosterServiceBuild(t *testing.T) {
	svc := newRosterService(t, nil)
	today := domain.NewDate(2025, time.July, 27)
	w := svc.WindowAround(today)

	r, err := svc.Build(context.Background(), " 138 ", w)
	require.NoError(t, err)

	assert.Equal(t, "138", r.VehicleID)
	assert.Len(t, r.Assignments, 36)
	assert.Equal(t, domain.NewDate(2025, time.July, 22), r.Assignments[0].Date)
	require.Len(t, r.Months, 2)
	assert.Equal(t, "Julio 2025", r.Months[0].Label)
}

func TestRosterServiceErrors(t *testing.T) {
	svc := newRosterService(t, nil)
	w := domain.Window{Start: domain.NewDate(2025, time.July, 1), End: domain.NewDate(2025, time.July, 2)}

	_, err := svc.Build(context.Background(), "999", w)
	assert.ErrorIs(t, err, domain.ErrUnknownVehicle)

	_, err = svc.Build(context.Background(), "", w)
	assert.ErrorIs(t, err, domain.ErrUnknownVehicle)

	_, err = svc.Build(context.Background(), "138", domain.Window{Start: w.End, End: w.Start})
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)

	broken := abSchedule()
	broken.Segments = nil
	svc.Source = fakeSource{"138": broken}
	_, err = svc.Build(context.Background(), "138", w)
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
}

func TestRosterServiceUsesCache(t *testing.T) {
	cache := newFakeCache()
	svc := newRosterService(t, cache)
	w := domain.Window{Start: domain.NewDate(2025, time.July, 25), End: domain.NewDate(2025, time.July, 27)}

	first, err := svc.Build(context.Background(), "138", w)
	require.NoError(t, err)
	second, err := svc.Build(context.Background(), "138", w)
	require.NoError(t, err)

	assert.Equal(t, first.Assignments, second.Assignments)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.puts)
}

func TestRosterServiceIgnoresCacheFailures(t *testing.T) {
	cache := newFakeCache()
	cache.err = errors.New("redis down")
	svc := newRosterService(t, cache)
	w := domain.Window{Start: domain.NewDate(2025, time.July, 25), End: domain.NewDate(2025, time.July, 27)}

	r, err := svc.Build(context.Background(), "138", w)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A", "B"}, routes(r.Assignments))
}

func TestRosterServiceVehicles(t *testing.T) {
	svc := newRosterService(t, nil)
	ids, err := svc.Vehicles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"138"}, ids)
}

func TestRosterServiceCacheFollowsScheduleChanges(t *testing.T) {
	cache := newFakeCache()
	w := domain.Window{Start: domain.NewDate(2025, time.July, 25), End: domain.NewDate(2025, time.July, 27)}

	before := newRosterService(t, cache)
	r, err := before.Build(context.Background(), "138", w)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A", "B"}, routes(r.Assignments))

	// Same cache, same window, rotation edited between restarts.
	edited := abSchedule()
	edited.Segments = []domain.Segment{{Route: "Z", Days: 1}}
	after := newRosterService(t, cache)
	after.Source = fakeSource{"138": edited}

	r, err = after.Build(context.Background(), "138", w)
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "Z", "Z"}, routes(r.Assignments))
	assert.Equal(t, 2, cache.puts)

	r, err = before.Build(context.Background(), "138", w)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A", "B"}, routes(r.Assignments))
	assert.Equal(t, 2, cache.puts)
}

func TestRosterServiceMetricLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)
	svc := newRosterService(t, newFakeCache())
	svc.Metrics = rec
	w := domain.Window{Start: domain.NewDate(2025, time.July, 25), End: domain.NewDate(2025, time.July, 27)}

	for i := 0; i < 50; i++ {
		_, err := svc.Build(context.Background(), "bogus-"+strconv.Itoa(i), w)
		require.ErrorIs(t, err, domain.ErrUnknownVehicle)
	}
	_, err = svc.Build(context.Background(), "138", w)
	require.NoError(t, err)
	_, err = svc.Build(context.Background(), "138", w)
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "roster_generations_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	expected := `
# HELP roster_generations_total Roster generations by vehicle and outcome
# TYPE roster_generations_total counter
roster_generations_total{outcome="cached",vehicle_id="138"} 1
roster_generations_total{outcome="failed",vehicle_id="unknown"} 50
roster_generations_total{outcome="generated",vehicle_id="138"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "roster_generations_total"))
}

func TestRosterServiceRejectsOversizedWindow(t *testing.T) {
	cache := newFakeCache()
	svc := newRosterService(t, cache)
	start := domain.NewDate(2025, time.January, 1)

	_, err := svc.Build(context.Background(), "138", domain.Window{Start: start, End: start.AddDays(366)})
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)

	_, err = svc.Build(context.Background(), "138", domain.Window{Start: domain.NewDate(1, time.January, 1), End: domain.NewDate(9999, time.December, 31)})
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
	assert.Zero(t, cache.gets)
	assert.Zero(t, cache.puts)

	r, err := svc.Build(context.Background(), "138", domain.Window{Start: start, End: start.AddDays(365)})
	require.NoError(t, err)
	assert.Len(t, r.Assignments, 366)
}
