package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/platform/db"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, InitSchema(context.Background(), conn, db.SQLite))
	return conn
}

func TestInitSchema_IsRepeatable(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, InitSchema(context.Background(), conn, db.SQLite))
}

func TestInitSchema_RejectsUnknownBackend(t *testing.T) {
	conn := openTestDB(t)
	err := InitSchema(context.Background(), conn, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestInitSchema_NilDB(t *testing.T) {
	require.Error(t, InitSchema(context.Background(), nil, db.SQLite))
}

func TestInspectionRepository_InsertSkipsExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLInspectionRepository(openTestDB(t), db.SQLite)
	at := time.Date(2025, 7, 25, 9, 0, 0, 0, time.UTC)

	items := []domain.InspectionItem{
		{Category: "Suspensión", Element: "Muelles", ModifiedAt: at},
		{Category: "Carrocería y Chasis", Element: "Muelles", ModifiedAt: at},
		{Category: "Fluidos", Element: "Aceite de motor", ModifiedAt: at},
	}

	added, err := repo.InsertItems(ctx, items)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	added, err = repo.InsertItems(ctx, items)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	got, err := repo.ListItems(ctx, domain.OrderByElement)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Aceite de motor", got[0].Element)
	assert.True(t, got[0].ModifiedAt.Equal(at))
}

func TestInspectionRepository_UpdateItem(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLInspectionRepository(openTestDB(t), db.SQLite)
	created := time.Date(2025, 7, 25, 9, 0, 0, 0, time.UTC)

	_, err := repo.InsertItems(ctx, []domain.InspectionItem{
		{Category: "Fluidos", Element: "Refrigerante", Notes: "bajo", ModifiedAt: created},
		{Category: "Fluidos", Element: "Aceite de motor", ModifiedAt: created},
	})
	require.NoError(t, err)

	items, err := repo.ListItems(ctx, domain.OrderByElement)
	require.NoError(t, err)
	target := items[1]
	require.Equal(t, "Refrigerante", target.Element)

	ok := true
	later := created.Add(time.Hour)
	updated, err := repo.UpdateItem(ctx, target.ID, domain.InspectionItemPatch{OK: &ok}, later)
	require.NoError(t, err)
	assert.True(t, updated.OK)
	assert.Equal(t, "bajo", updated.Notes, "notes untouched when not in the patch")
	assert.True(t, updated.ModifiedAt.Equal(later))

	byModified, err := repo.ListItems(ctx, domain.OrderByModified)
	require.NoError(t, err)
	assert.Equal(t, "Refrigerante", byModified[1].Element)

	_, err = repo.UpdateItem(ctx, 9999, domain.InspectionItemPatch{OK: &ok}, later)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInspectionRepository_Unit(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLInspectionRepository(openTestDB(t), db.SQLite)

	_, found, err := repo.GetUnit(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	at := time.Date(2025, 7, 25, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.PutUnit(ctx, domain.UnitInfo{Unit: "138", Model: "2019", ModifiedAt: at}))
	require.NoError(t, repo.PutUnit(ctx, domain.UnitInfo{Unit: "138", Model: "2019", Operator: "Juan", ModifiedAt: at}))

	u, found, err := repo.GetUnit(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Juan", u.Operator)
	assert.True(t, u.ModifiedAt.Equal(at))
}

func TestMovementRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLMovementRepository(openTestDB(t), db.SQLite)
	day := time.Date(2025, 7, 25, 12, 0, 0, 0, time.UTC)
	price := 1800.0

	entryID, err := repo.InsertMovement(ctx, domain.Movement{
		Kind: domain.KindEntry, Quantity: 10, Destination: domain.WarehouseDestination,
		UnitCost: 1350, Status: domain.StatusReceived, Date: day,
	})
	require.NoError(t, err)

	exitID, err := repo.InsertMovement(ctx, domain.Movement{
		Kind: domain.KindExit, Quantity: 2, Destination: "Taller", UnitCost: 1350,
		SalePrice: &price, Status: domain.StatusPending, Date: day.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NotEqual(t, entryID, exitID)

	list, err := repo.ListMovements(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, exitID, list[0].ID, "newest first")
	require.NotNil(t, list[0].SalePrice)
	assert.InDelta(t, 1800, *list[0].SalePrice, 0.001)
	assert.Nil(t, list[1].SalePrice)

	m, err := repo.GetMovement(ctx, exitID)
	require.NoError(t, err)
	m.Status = domain.StatusPaid
	m.Profit = m.RealizedProfit()
	require.NoError(t, repo.UpdateMovement(ctx, m))

	m, err = repo.GetMovement(ctx, exitID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, m.Status)
	assert.InDelta(t, 900, m.Profit, 0.001)
	assert.True(t, m.Date.Equal(day.Add(time.Hour)))

	_, err = repo.GetMovement(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateMovement(ctx, domain.Movement{ID: 9999}), domain.ErrNotFound)

	n, err := repo.DeleteAllMovements(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	list, err = repo.ListMovements(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSeedMovementsFromJSON(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLMovementRepository(openTestDB(t), db.SQLite)

	path := filepath.Join(t.TempDir(), "movimientos.json")
	export := `[
		{"tipo": "entrada", "cantidad": 5, "origen": "proveedor", "destino": "bodega", "precio": 1350,
		 "precioVenta": null, "fecha": "2025-07-20T15:04:05.000Z", "estado": "entrada", "descripcion": "lote"},
		{"tipo": "salida", "cantidad": 1, "destino": "Ruta 14", "precio": 1350,
		 "precioVenta": 1500, "fecha": "2025-07-21T10:00:00.000Z", "estado": "pagado", "descripcion": ""},
		{"tipo": "salida", "cantidad": 1, "destino": "Ruta 9", "precio": 1350,
		 "precioVenta": 1500, "fecha": "2025-07-22T10:00:00.000Z", "estado": "cancelado", "descripcion": ""}
	]`
	require.NoError(t, os.WriteFile(path, []byte(export), 0o600))

	n, err := SeedMovementsFromJSON(ctx, repo, path, 1350)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	list, err := repo.ListMovements(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, domain.StatusCancelled, list[0].Status)
	assert.Equal(t, domain.StatusPaid, list[1].Status)
	assert.InDelta(t, 150, list[1].Profit, 0.001)
	assert.Equal(t, domain.WarehouseDestination, list[2].Destination)

	s := domain.Summarize(list, 1350)
	assert.Equal(t, 4, s.WarehouseQty)
}

func TestSeedMovementsFromJSON_RejectsBadRecords(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLMovementRepository(openTestDB(t), db.SQLite)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"tipo": "salida", "cantidad": 0, "fecha": "2025-07-21T10:00:00Z", "estado": "pagado"}]`), 0o600))

	_, err := SeedMovementsFromJSON(ctx, repo, path, 1350)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)

	list, err := repo.ListMovements(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
