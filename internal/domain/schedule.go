package domain

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// One contiguous run of days assigned to a single route within a cycle.
type Segment struct {
	Route string
	Days  int
}

// RouteSchedule is the rotation of a single vehicle.
// StartDate is day zero of the cycle; Segments repeat forever in both
// directions from it.
type RouteSchedule struct {
	VehicleID string
	StartDate Date
	Segments  []Segment
}

// Validate reports ErrInvalidSchedule when the rotation cannot be expanded.
func (s RouteSchedule) Validate() error {
	if !s.StartDate.IsValid() {
		return fmt.Errorf("%w: vehicle %q: start date %q is not a calendar date", ErrInvalidSchedule, s.VehicleID, s.StartDate)
	}

	if len(s.Segments) == 0 {
		return fmt.Errorf("%w: vehicle %q: segments must not be empty", ErrInvalidSchedule, s.VehicleID)
	}

	for i, seg := range s.Segments {
		if seg.Days <= 0 {
			return fmt.Errorf("%w: vehicle %q: segment #%d (%q) has day count %d", ErrInvalidSchedule, s.VehicleID, i+1, seg.Route, seg.Days)
		}
		if strings.TrimSpace(seg.Route) == "" {
			return fmt.Errorf("%w: vehicle %q: segment #%d has an empty route name", ErrInvalidSchedule, s.VehicleID, i+1)
		}
	}

	return nil
}

// CycleLength is the number of days after which the rotation repeats.
func (s RouteSchedule) CycleLength() int {
	total := 0
	for _, seg := range s.Segments {
		total += seg.Days
	}
	return total
}

// Routes returns the distinct route names in first-appearance order.
func (s RouteSchedule) Routes() []string {
	seen := make(map[string]struct{}, len(s.Segments))
	out := make([]string, 0, len(s.Segments))
	for _, seg := range s.Segments {
		if _, ok := seen[seg.Route]; ok {
			continue
		}
		seen[seg.Route] = struct{}{}
		out = append(out, seg.Route)
	}
	return out
}

// Fingerprint identifies the rotation content: the start date and every
// segment in order. Two schedules expand to the same roster iff their
// fingerprints match (barring hash collisions).
func (s RouteSchedule) Fingerprint() string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s.StartDate.String()))
	for _, seg := range s.Segments {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(seg.Route))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(strconv.Itoa(seg.Days)))
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
