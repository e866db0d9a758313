package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/platform/logger"
	"strconv"
)

var handlerLog logger.Logger = logger.New("http")

// SetLogger replaces the logger used by the handlers.
func SetLogger(l logger.Logger) {
	if l == nil {
		l = logger.NopLogger{}
	}
	handlerLog = l
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		handlerLog.Errorf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors to HTTP status codes.
// Unexpected errors are logged and reported without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var dateErr domain.ErrInvalidDate
	switch {
	case errors.Is(err, domain.ErrInvalidSchedule):
		handlerLog.Errorf("%s failed: %v", op, err)
		writeError(w, r, http.StatusInternalServerError, "schedule configuration error")
	case errors.Is(err, domain.ErrUnknownVehicle):
		writeError(w, r, http.StatusNotFound, "unknown vehicle")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidMovement),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrConfirmationRequired),
		errors.As(err, &dateErr):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		handlerLog.Errorf("%s failed: %v", op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads exactly one JSON object with no unknown fields into dst.
// It writes the error response and returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// pathID parses the {id} path value as a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}
