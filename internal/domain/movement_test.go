package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func TestMovementInputNormalize(t *testing.T) {
	entry, err := MovementInput{Kind: KindEntry, Quantity: 10, Destination: "ruta 5", Status: StatusPaid}.Normalize(1350)
	require.NoError(t, err)
	assert.Equal(t, WarehouseDestination, entry.Destination)
	assert.Equal(t, StatusReceived, entry.Status)
	assert.Equal(t, 1350.0, entry.UnitCost)
	assert.Zero(t, entry.Profit)

	sold, err := MovementInput{Kind: KindExit, Quantity: 2, Destination: "Atoluca", SalePrice: price(1500), Status: StatusPaid}.Normalize(1350)
	require.NoError(t, err)
	assert.Equal(t, 300.0, sold.Profit)

	owed, err := MovementInput{Kind: KindExit, Quantity: 2, SalePrice: price(1500), Status: StatusDebt}.Normalize(1350)
	require.NoError(t, err)
	assert.Zero(t, owed.Profit)
	assert.True(t, owed.Open())

	_, err = MovementInput{Kind: KindExit, Quantity: 0, Status: StatusPaid}.Normalize(1350)
	assert.ErrorIs(t, err, ErrInvalidMovement)

	_, err = MovementInput{Kind: KindExit, Quantity: 1, Status: StatusCancelled}.Normalize(1350)
	assert.ErrorIs(t, err, ErrInvalidMovement)

	_, err = MovementInput{Kind: "regalo", Quantity: 1}.Normalize(1350)
	assert.ErrorIs(t, err, ErrInvalidMovement)
}

func TestSummarize(t *testing.T) {
	ms := []Movement{
		{Kind: KindEntry, Quantity: 10, UnitCost: 1350, Status: StatusReceived},
		{Kind: KindExit, Quantity: 2, UnitCost: 1350, SalePrice: price(1500), Status: StatusPaid, Profit: 300},
		{Kind: KindExit, Quantity: 3, UnitCost: 1350, Status: StatusPending},
		{Kind: KindExit, Quantity: 1, UnitCost: 1350, SalePrice: price(1400), Status: StatusDebt},
		{Kind: KindExit, Quantity: 4, UnitCost: 1350, SalePrice: price(1400), Status: StatusCancelled},
	}

	s := Summarize(ms, 1350)
	assert.Equal(t, 10, s.EntriesQty)
	assert.Equal(t, 13500.0, s.EntriesValue)
	assert.Equal(t, 6, s.ExitsQty)
	assert.Equal(t, 4, s.WarehouseQty)
	assert.Equal(t, 5400.0, s.WarehouseValue)
	assert.Equal(t, 3, s.PendingQty)
	assert.Equal(t, 4050.0, s.PendingValue)
	assert.Equal(t, 1, s.DebtQty)
	assert.Equal(t, 1400.0, s.DebtValue)
	assert.Equal(t, 2, s.PaidQty)
	assert.Equal(t, 3000.0, s.PaidValue)
	assert.Equal(t, 300.0, s.TotalProfit)
}
