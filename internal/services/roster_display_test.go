package services

import (
	"route-roster-service/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByMonth(t *testing.T) {
	es, err := LookupLocale("es")
	require.NoError(t, err)

	s := abSchedule()
	assignments, err := GenerateRoster(s, domain.NewDate(2025, time.July, 20), domain.NewDate(2025, time.September, 2))
	require.NoError(t, err)

	groups := GroupByMonth(assignments, es)
	require.Len(t, groups, 3)

	assert.Equal(t, "Julio 2025", groups[0].Label)
	assert.Equal(t, "Agosto 2025", groups[1].Label)
	assert.Equal(t, "Septiembre 2025", groups[2].Label)
	assert.Len(t, groups[0].Assignments, 12)
	assert.Len(t, groups[1].Assignments, 31)
	assert.Len(t, groups[2].Assignments, 2)

	// Every assignment appears exactly once and in its original order.
	var flat []domain.Assignment
	for _, g := range groups {
		front, back := g.Split()
		flat = append(flat, front...)
		flat = append(flat, back...)
	}
	assert.Equal(t, assignments, flat)

	front, back := groups[1].Split()
	assert.Len(t, front, 16)
	assert.Len(t, back, 15)
}

func TestGroupByMonthEmpty(t *testing.T) {
	es, _ := LookupLocale("es")
	assert.Empty(t, GroupByMonth(nil, es))
}

func TestLocaleLabels(t *testing.T) {
	es, err := LookupLocale("ES")
	require.NoError(t, err)
	en, err := LookupLocale("en")
	require.NoError(t, err)

	friday := domain.NewDate(2025, time.July, 25)
	assert.Equal(t, "vie 25", es.DayLabel(friday))
	assert.Equal(t, "Fri 25", en.DayLabel(friday))
	assert.Equal(t, "December 2025", en.MonthLabel(2025, time.December))
	assert.Contains(t, es.Money(13500), "13")

	_, err = LookupLocale("fr")
	assert.Error(t, err)
}
