package handlers

import (
	"bytes"
	"net/http"
	"route-roster-service/internal/api/dto"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/ports"
	"route-roster-service/internal/report"
	"route-roster-service/internal/services"
	"strconv"
	"time"
)

// InspectionHandler exposes the inspection checklist and its PDF report.
type InspectionHandler struct {
	Repo     ports.InspectionRepository
	Location *time.Location
	Now      func() time.Time
}

func (h *InspectionHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *InspectionHandler) Init(w http.ResponseWriter, r *http.Request) {
	added, err := services.InitializeChecklist(r.Context(), h.Repo, h.now())
	if err != nil {
		writeServiceError(w, r, "initialize checklist", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.InitChecklistResponse{Added: added})
}

func (h *InspectionHandler) List(w http.ResponseWriter, r *http.Request) {
	order := domain.InspectionOrder(r.URL.Query().Get("order"))
	items, err := services.ListChecklist(r.Context(), h.Repo, order)
	if err != nil {
		writeServiceError(w, r, "list checklist", err)
		return
	}

	res := dto.ListInspectionItemsResponse{
		Items: make([]dto.InspectionItemResponse, 0, len(items)),
	}
	for _, it := range items {
		res.Items = append(res.Items, toItemResponse(it))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *InspectionHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.InspectionItemPatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.OK == nil && req.Notes == nil {
		writeError(w, r, http.StatusBadRequest, "ok or notes is required")
		return
	}

	patch := domain.InspectionItemPatch{OK: req.OK, Notes: req.Notes}
	item, err := services.UpdateChecklistItem(r.Context(), h.Repo, id, patch, h.now())
	if err != nil {
		writeServiceError(w, r, "update checklist item", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toItemResponse(item))
}

func (h *InspectionHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	u, err := services.GetUnitInfo(r.Context(), h.Repo)
	if err != nil {
		writeServiceError(w, r, "get unit info", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toUnitResponse(u))
}

func (h *InspectionHandler) PutUnit(w http.ResponseWriter, r *http.Request) {
	var req dto.UnitInfoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patch := domain.UnitInfoPatch{Unit: req.Unit, Model: req.Model, Operator: req.Operator}
	u, err := services.UpdateUnitInfo(r.Context(), h.Repo, patch, h.now())
	if err != nil {
		writeServiceError(w, r, "update unit info", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toUnitResponse(u))
}

// Report renders the checklist as a PDF attachment.
func (h *InspectionHandler) Report(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := services.ListChecklist(ctx, h.Repo, domain.OrderByElement)
	if err != nil {
		writeServiceError(w, r, "inspection report", err)
		return
	}
	u, err := services.GetUnitInfo(ctx, h.Repo)
	if err != nil {
		writeServiceError(w, r, "inspection report", err)
		return
	}

	// Render fully before writing so failures still get a JSON error.
	var buf bytes.Buffer
	rep := report.InspectionReport{Unit: u, Items: items, Location: h.Location}
	if _, err := rep.Render(&buf); err != nil {
		writeServiceError(w, r, "inspection report", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="bitacora.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		handlerLog.Warnf("write report failed: %v", err)
	}
}

func toItemResponse(it domain.InspectionItem) dto.InspectionItemResponse {
	return dto.InspectionItemResponse{
		ID:         it.ID,
		Category:   it.Category,
		Element:    it.Element,
		OK:         it.OK,
		Notes:      it.Notes,
		ModifiedAt: it.ModifiedAt,
	}
}

func toUnitResponse(u domain.UnitInfo) dto.UnitInfoResponse {
	res := dto.UnitInfoResponse{Unit: u.Unit, Model: u.Model, Operator: u.Operator}
	if !u.ModifiedAt.IsZero() {
		at := u.ModifiedAt
		res.ModifiedAt = &at
	}
	return res
}
