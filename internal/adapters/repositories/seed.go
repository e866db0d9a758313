package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/ports"
	"strings"
	"time"
)

// One record of a ledger export, as written by the browser app.
type MovementSeed struct {
	Kind        string   `json:"tipo"`
	Quantity    int      `json:"cantidad"`
	Destination string   `json:"destino"`
	UnitCost    float64  `json:"precio"`
	SalePrice   *float64 `json:"precioVenta"`
	Date        string   `json:"fecha"`
	Status      string   `json:"estado"`
	Description string   `json:"descripcion"`
}

// Import the movements of a JSON export into the ledger.
// Records keep their original date; profit is recomputed.
func SeedMovementsFromJSON(ctx context.Context, repo ports.MovementRepository, jsonPath string, unitCost float64) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed movements: read %q: %w", jsonPath, err)
	}

	var data []MovementSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed movements: parse json: %w", err)
	}

	rows := make([]domain.Movement, 0, len(data))
	for i, item := range data {
		m, err := item.movement(unitCost)
		if err != nil {
			return 0, fmt.Errorf("seed movements: item at index %d: %w", i+1, err)
		}
		rows = append(rows, m)
	}

	for i, m := range rows {
		if _, err := repo.InsertMovement(ctx, m); err != nil {
			return i, fmt.Errorf("seed movements: insert item %d: %w", i+1, err)
		}
	}

	return len(rows), nil
}

func (s MovementSeed) movement(defaultCost float64) (domain.Movement, error) {
	date, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s.Date))
	if err != nil {
		return domain.Movement{}, fmt.Errorf("parse date %q: %w", s.Date, err)
	}

	cost := s.UnitCost
	if cost <= 0 {
		cost = defaultCost
	}

	kind := domain.MovementKind(strings.TrimSpace(s.Kind))
	status := domain.MovementStatus(strings.TrimSpace(s.Status))

	// Exits that were returned to the warehouse are stored as cancelled,
	// which the input normalization does not accept for new movements.
	cancelled := kind == domain.KindExit && status == domain.StatusCancelled
	if cancelled {
		status = domain.StatusPending
	}

	m, err := domain.MovementInput{
		Kind:        kind,
		Quantity:    s.Quantity,
		Destination: s.Destination,
		SalePrice:   s.SalePrice,
		Status:      status,
		Description: s.Description,
	}.Normalize(cost)
	if err != nil {
		return domain.Movement{}, err
	}

	if cancelled {
		m.Status = domain.StatusCancelled
		m.Profit = 0
	}
	m.Date = date.UTC()
	return m, nil
}
