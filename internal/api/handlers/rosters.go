package handlers

import (
	"net/http"
	"route-roster-service/internal/api/dto"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/services"
	"time"
)

// RosterHandler exposes the vehicle list and generated rosters.
type RosterHandler struct {
	Service  *services.RosterService
	Location *time.Location
	Now      func() time.Time
}

// today is the current calendar day in the configured zone.
func (h *RosterHandler) today() domain.Date {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	loc := h.Location
	if loc == nil {
		loc = time.UTC
	}
	return domain.DateOf(now().In(loc))
}

func (h *RosterHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	ids, err := h.Service.Vehicles(r.Context())
	if err != nil {
		writeServiceError(w, r, "list vehicles", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListVehiclesResponse{Vehicles: ids})
}

// Get returns the roster of one vehicle. Query parameters today, start and
// end (YYYY-MM-DD) are optional; missing bounds come from the window policy.
func (h *RosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	today := h.today()
	if v := q.Get("today"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "today: "+err.Error())
			return
		}
		today = d
	}

	window := h.Service.WindowAround(today)
	if v := q.Get("start"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "start: "+err.Error())
			return
		}
		window.Start = d
	}
	if v := q.Get("end"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "end: "+err.Error())
			return
		}
		window.End = d
	}

	roster, err := h.Service.Build(r.Context(), r.PathValue("vehicle"), window)
	if err != nil {
		writeServiceError(w, r, "build roster", err)
		return
	}

	res := dto.RosterResponse{
		Vehicle:     roster.VehicleID,
		Start:       roster.Window.Start.String(),
		End:         roster.Window.End.String(),
		Today:       today.String(),
		Assignments: h.assignments(roster.Assignments, today),
		Months:      make([]dto.MonthResponse, 0, len(roster.Months)),
	}
	for _, g := range roster.Months {
		front, back := g.Split()
		res.Months = append(res.Months, dto.MonthResponse{
			Label: g.Label,
			Year:  g.Year,
			Month: int(g.Month),
			Front: h.assignments(front, today),
			Back:  h.assignments(back, today),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RosterHandler) assignments(as []domain.Assignment, today domain.Date) []dto.AssignmentResponse {
	out := make([]dto.AssignmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, dto.AssignmentResponse{
			Date:  a.Date.String(),
			Day:   h.Service.Locale.DayLabel(a.Date),
			Route: a.Route,
			Today: a.Date == today,
		})
	}
	return out
}
