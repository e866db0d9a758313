package domain

import (
	"fmt"
	"time"
)

// The route a vehicle covers on a single calendar day.
// Assignments are derived from a RouteSchedule and never persisted.
type Assignment struct {
	Date  Date
	Route string
}

// Inclusive date range for which assignments are requested.
type Window struct {
	Start Date
	End   Date
}

// Days returns the number of calendar days covered by the window.
func (w Window) Days() int {
	return w.End.DaysSince(w.Start) + 1
}

func (w Window) Contains(d Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// RosterKey names one cached roster. Schedule is the RouteSchedule
// fingerprint, so an edited rotation never hits an entry built from the
// previous one.
type RosterKey struct {
	VehicleID string
	Schedule  string
	Window    Window
}

// WindowPolicy is the display policy deciding how much history and future
// is shown around the current day. MaxDays caps explicitly requested
// windows; zero means no cap.
type WindowPolicy struct {
	LookbackDays  int
	LookaheadDays int
	MaxDays       int
}

// Check reports ErrInvalidWindow for a reversed window or one longer than
// MaxDays.
func (p WindowPolicy) Check(w Window) error {
	if w.End.Before(w.Start) {
		return fmt.Errorf("%w: end %s is before start %s", ErrInvalidWindow, w.End, w.Start)
	}
	if p.MaxDays > 0 && w.Days() > p.MaxDays {
		return fmt.Errorf("%w: %s..%s spans more than %d days", ErrInvalidWindow, w.Start, w.End, p.MaxDays)
	}
	return nil
}

func (p WindowPolicy) Around(today Date) Window {
	return Window{
		Start: today.AddDays(-p.LookbackDays),
		End:   today.AddDays(p.LookaheadDays),
	}
}

// A calendar month worth of assignments, in date order.
type MonthGroup struct {
	Year        int
	Month       time.Month
	Label       string
	Assignments []Assignment
}

// Split divides the month into two columns for side-by-side rendering.
// The front half holds the larger share when the count is odd.
func (g MonthGroup) Split() (front, back []Assignment) {
	mid := (len(g.Assignments) + 1) / 2
	return g.Assignments[:mid:mid], g.Assignments[mid:]
}
