package domain

import (
	"fmt"
	"strings"
	"time"
)

type MovementKind string

const (
	KindEntry MovementKind = "entrada"
	KindExit  MovementKind = "salida"
)

type MovementStatus string

const (
	StatusReceived  MovementStatus = "entrada"
	StatusPaid      MovementStatus = "pagado"
	StatusPending   MovementStatus = "pendiente"
	StatusDebt      MovementStatus = "en deuda"
	StatusCancelled MovementStatus = "cancelado"
)

// Entries always land in the warehouse.
const WarehouseDestination = "bodega"

// Represents a single stock movement of the sign inventory.
// Entries add stock to the warehouse at the fixed unit cost; exits take stock
// out, optionally sold at SalePrice. Profit is only realized once an exit is
// paid.
type Movement struct {
	ID          int64
	Kind        MovementKind
	Quantity    int
	Destination string
	UnitCost    float64
	SalePrice   *float64
	Status      MovementStatus
	Description string
	Date        time.Time
	Profit      float64
}

// Caller-provided fields of a movement.
type MovementInput struct {
	Kind        MovementKind
	Quantity    int
	Destination string
	SalePrice   *float64
	Status      MovementStatus
	Description string
}

// Open reports whether the movement still awaits payment.
func (m Movement) Open() bool {
	return m.Status == StatusPending || m.Status == StatusDebt
}

// Value is the amount a movement represents: the sale price when there is
// one, the unit cost otherwise.
func (m Movement) Value() float64 {
	price := m.UnitCost
	if m.SalePrice != nil {
		price = *m.SalePrice
	}
	return price * float64(m.Quantity)
}

// RealizedProfit is non-zero only for paid exits with a sale price.
func (m Movement) RealizedProfit() float64 {
	if m.Kind != KindExit || m.Status != StatusPaid || m.SalePrice == nil {
		return 0
	}
	return (*m.SalePrice - m.UnitCost) * float64(m.Quantity)
}

// Normalize validates the input and builds the stored movement.
func (in MovementInput) Normalize(unitCost float64) (Movement, error) {
	if in.Quantity < 1 {
		return Movement{}, fmt.Errorf("%w: quantity must be at least 1, got %d", ErrInvalidMovement, in.Quantity)
	}
	if in.SalePrice != nil && *in.SalePrice < 0 {
		return Movement{}, fmt.Errorf("%w: sale price must not be negative", ErrInvalidMovement)
	}

	m := Movement{
		Kind:        in.Kind,
		Quantity:    in.Quantity,
		UnitCost:    unitCost,
		Description: strings.TrimSpace(in.Description),
	}

	switch in.Kind {
	case KindEntry:
		m.Destination = WarehouseDestination
		m.Status = StatusReceived
	case KindExit:
		switch in.Status {
		case StatusPaid, StatusPending, StatusDebt:
		default:
			return Movement{}, fmt.Errorf("%w: exit status %q", ErrInvalidMovement, in.Status)
		}
		m.Status = in.Status
		m.Destination = strings.TrimSpace(in.Destination)
		m.SalePrice = in.SalePrice
	default:
		return Movement{}, fmt.Errorf("%w: kind %q", ErrInvalidMovement, in.Kind)
	}

	m.Profit = m.RealizedProfit()
	return m, nil
}

// Inventory totals over the whole ledger.
type LedgerSummary struct {
	EntriesQty     int
	EntriesValue   float64
	ExitsQty       int
	WarehouseQty   int
	WarehouseValue float64
	PendingQty     int
	PendingValue   float64
	DebtQty        int
	DebtValue      float64
	PaidQty        int
	PaidValue      float64
	TotalProfit    float64
}

// Summarize computes the ledger totals. Cancelled exits returned their stock
// to the warehouse and are not counted as exits.
func Summarize(movements []Movement, unitCost float64) LedgerSummary {
	var s LedgerSummary
	for _, m := range movements {
		switch {
		case m.Kind == KindEntry:
			s.EntriesQty += m.Quantity
			s.EntriesValue += m.UnitCost * float64(m.Quantity)
		case m.Kind == KindExit && m.Status != StatusCancelled:
			s.ExitsQty += m.Quantity
		}

		switch m.Status {
		case StatusPending:
			s.PendingQty += m.Quantity
			s.PendingValue += m.Value()
		case StatusDebt:
			s.DebtQty += m.Quantity
			s.DebtValue += m.Value()
		case StatusPaid:
			s.PaidQty += m.Quantity
			s.PaidValue += m.Value()
			s.TotalProfit += m.Profit
		}
	}

	s.WarehouseQty = s.EntriesQty - s.ExitsQty
	s.WarehouseValue = float64(s.WarehouseQty) * unitCost
	return s
}
