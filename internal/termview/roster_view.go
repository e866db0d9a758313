package termview

import (
	"route-roster-service/internal/domain"
	"route-roster-service/internal/services"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TodayMarker prefixes the row of the current day.
const TodayMarker = "»"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	dayStyle    = lipgloss.NewStyle().Width(8)
	todayStyle  = lipgloss.NewStyle().Bold(true).Reverse(true)
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#dce0e5")).
			Padding(0, 1)
)

// RosterView renders a roster as one two-column table per month.
type RosterView struct {
	Locale services.Locale
	// Colors maps route names to "#rrggbb" foreground colors.
	Colors map[string]string
	Today  domain.Date
}

// Render returns the printable roster. Each month shows its front half on the
// left and its back half on the right.
func (v RosterView) Render(r *services.Roster) string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(v.heading(r)))
	sb.WriteString("\n")

	for _, g := range r.Months {
		front, back := g.Split()
		sb.WriteString(titleStyle.Render(g.Label))
		sb.WriteString("\n")

		left := columnStyle.Render(v.column(front))
		if len(back) == 0 {
			sb.WriteString(left)
		} else {
			sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", columnStyle.Render(v.column(back))))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (v RosterView) heading(r *services.Roster) string {
	return "Unidad " + r.VehicleID + "  " + r.Window.Start.String() + " → " + r.Window.End.String()
}

func (v RosterView) column(as []domain.Assignment) string {
	lines := make([]string, len(as))
	for i, a := range as {
		lines[i] = v.line(a)
	}
	return strings.Join(lines, "\n")
}

func (v RosterView) line(a domain.Assignment) string {
	marker := " "
	if a.Date == v.Today {
		marker = TodayMarker
	}

	route := lipgloss.NewStyle()
	if c, ok := v.Colors[a.Route]; ok {
		route = route.Foreground(lipgloss.Color(c))
	}

	line := marker + " " + dayStyle.Render(v.Locale.DayLabel(a.Date)) + route.Render(a.Route)
	if a.Date == v.Today {
		return todayStyle.Render(line)
	}
	return line
}
