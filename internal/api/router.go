package api

import (
	"net/http"
	"route-roster-service/internal/api/handlers"
	"route-roster-service/internal/platform/logger"
	"route-roster-service/internal/platform/metrics"
	"route-roster-service/internal/ports"
	"route-roster-service/internal/services"
	"time"
)

// Deps holds everything the HTTP layer needs. Metrics and Log are optional.
type Deps struct {
	Rosters     *services.RosterService
	Inspections ports.InspectionRepository
	Ledger      *services.Ledger
	Metrics     *metrics.Recorder
	// Location is the zone used for "today" and report timestamps.
	Location *time.Location
	// Now overrides the clock in tests.
	Now func() time.Time
	Log logger.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	log := d.Log
	if log == nil {
		log = logger.NopLogger{}
	}
	handlers.SetLogger(log)

	mux := http.NewServeMux()

	rosterHandler := &handlers.RosterHandler{
		Service:  d.Rosters,
		Location: d.Location,
		Now:      d.Now,
	}
	inspectionHandler := &handlers.InspectionHandler{
		Repo:     d.Inspections,
		Location: d.Location,
		Now:      d.Now,
	}
	signHandler := &handlers.SignHandler{
		Ledger: d.Ledger,
		Locale: d.Rosters.Locale,
		Now:    d.Now,
	}

	mux.HandleFunc("GET /health", handlers.Health)
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics.Handler())
	}

	mux.HandleFunc("GET /vehicles", rosterHandler.Vehicles)
	mux.HandleFunc("GET /rosters/{vehicle}", rosterHandler.Get)

	mux.HandleFunc("POST /inspections/init", inspectionHandler.Init)
	mux.HandleFunc("GET /inspections", inspectionHandler.List)
	mux.HandleFunc("PATCH /inspections/{id}", inspectionHandler.Patch)
	mux.HandleFunc("GET /inspections/unit", inspectionHandler.GetUnit)
	mux.HandleFunc("PUT /inspections/unit", inspectionHandler.PutUnit)
	mux.HandleFunc("GET /inspections/report.pdf", inspectionHandler.Report)

	mux.HandleFunc("GET /signs/movements", signHandler.List)
	mux.HandleFunc("POST /signs/movements", signHandler.Create)
	mux.HandleFunc("DELETE /signs/movements", signHandler.Clear)
	mux.HandleFunc("PUT /signs/movements/{id}", signHandler.Update)
	mux.HandleFunc("POST /signs/movements/{id}/pay", signHandler.Pay)
	mux.HandleFunc("POST /signs/movements/{id}/return", signHandler.Return)
	mux.HandleFunc("GET /signs/summary", signHandler.Summary)

	return requestIDMiddleware(loggingMiddleware(mux, log, d.Metrics))
}
