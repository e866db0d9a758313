package handlers

import (
	"net/http"
	"route-roster-service/internal/api/dto"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/services"
	"strconv"
	"time"
)

// SignHandler exposes the sign inventory ledger.
type SignHandler struct {
	Ledger *services.Ledger
	Locale services.Locale
	Now    func() time.Time
}

func (h *SignHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *SignHandler) List(w http.ResponseWriter, r *http.Request) {
	ms, err := h.Ledger.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "list movements", err)
		return
	}

	res := dto.ListMovementsResponse{Movements: make([]dto.MovementResponse, 0, len(ms))}
	for _, m := range ms {
		res.Movements = append(res.Movements, toMovementResponse(m))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *SignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.MovementRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.Ledger.Add(r.Context(), toMovementInput(req), h.now())
	if err != nil {
		writeServiceError(w, r, "add movement", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, toMovementResponse(m))
}

func (h *SignHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.MovementRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.Ledger.Update(r.Context(), id, toMovementInput(req))
	if err != nil {
		writeServiceError(w, r, "update movement", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toMovementResponse(m))
}

func (h *SignHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	m, err := h.Ledger.Pay(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "pay movement", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toMovementResponse(m))
}

func (h *SignHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	m, err := h.Ledger.ReturnToWarehouse(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "return movement", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toMovementResponse(m))
}

// Clear deletes the whole ledger; it requires ?confirm=true.
func (h *SignHandler) Clear(w http.ResponseWriter, r *http.Request) {
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	n, err := h.Ledger.Clear(r.Context(), confirmed)
	if err != nil {
		writeServiceError(w, r, "clear movements", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ClearMovementsResponse{Deleted: n})
}

func (h *SignHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.Ledger.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, "ledger summary", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LedgerSummaryResponse{
		EntriesQty:      s.EntriesQty,
		EntriesValue:    s.EntriesValue,
		ExitsQty:        s.ExitsQty,
		WarehouseQty:    s.WarehouseQty,
		WarehouseValue:  s.WarehouseValue,
		PendingQty:      s.PendingQty,
		PendingValue:    s.PendingValue,
		DebtQty:         s.DebtQty,
		DebtValue:       s.DebtValue,
		PaidQty:         s.PaidQty,
		PaidValue:       s.PaidValue,
		TotalProfit:     s.TotalProfit,
		TotalProfitText: h.Locale.Money(s.TotalProfit),
	})
}

func toMovementInput(req dto.MovementRequest) domain.MovementInput {
	return domain.MovementInput{
		Kind:        domain.MovementKind(req.Kind),
		Quantity:    req.Quantity,
		Destination: req.Destination,
		SalePrice:   req.SalePrice,
		Status:      domain.MovementStatus(req.Status),
		Description: req.Description,
	}
}

func toMovementResponse(m domain.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		Kind:        string(m.Kind),
		Quantity:    m.Quantity,
		Destination: m.Destination,
		UnitCost:    m.UnitCost,
		SalePrice:   m.SalePrice,
		Status:      string(m.Status),
		Description: m.Description,
		Date:        m.Date,
		Profit:      m.Profit,
	}
}
