package services

import "route-roster-service/internal/domain"

// GroupByMonth buckets assignments by calendar month, keeping their order.
//
// Assignments are expected in ascending date order, as GenerateRoster
// returns them; a month that reappears later starts a new group rather than
// reordering the input.
func GroupByMonth(assignments []domain.Assignment, loc Locale) []domain.MonthGroup {
	groups := make([]domain.MonthGroup, 0, 2)
	for _, a := range assignments {
		n := len(groups)
		if n > 0 && groups[n-1].Year == a.Date.Y && groups[n-1].Month == a.Date.M {
			groups[n-1].Assignments = append(groups[n-1].Assignments, a)
			continue
		}

		groups = append(groups, domain.MonthGroup{
			Year:        a.Date.Y,
			Month:       a.Date.M,
			Label:       loc.MonthLabel(a.Date.Y, a.Date.M),
			Assignments: []domain.Assignment{a},
		})
	}

	return groups
}
