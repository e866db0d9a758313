package dto

import "time"

type MovementRequest struct {
	Kind        string   `json:"kind"`
	Quantity    int      `json:"quantity"`
	Destination string   `json:"destination"`
	SalePrice   *float64 `json:"sale_price"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
}

type MovementResponse struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	Quantity    int       `json:"quantity"`
	Destination string    `json:"destination"`
	UnitCost    float64   `json:"unit_cost"`
	SalePrice   *float64  `json:"sale_price"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Profit      float64   `json:"profit"`
}

type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
}

type ClearMovementsResponse struct {
	Deleted int64 `json:"deleted"`
}

type LedgerSummaryResponse struct {
	EntriesQty     int     `json:"entries_qty"`
	EntriesValue   float64 `json:"entries_value"`
	ExitsQty       int     `json:"exits_qty"`
	WarehouseQty   int     `json:"warehouse_qty"`
	WarehouseValue float64 `json:"warehouse_value"`
	PendingQty     int     `json:"pending_qty"`
	PendingValue   float64 `json:"pending_value"`
	DebtQty        int     `json:"debt_qty"`
	DebtValue      float64 `json:"debt_value"`
	PaidQty        int     `json:"paid_qty"`
	PaidValue      float64 `json:"paid_value"`
	TotalProfit    float64 `json:"total_profit"`

	// TotalProfitText is TotalProfit formatted for display.
	TotalProfitText string `json:"total_profit_text"`
}
