package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-roster-service/internal/platform/db"
)

// InitSchema creates the tables of the inspection log and the sign ledger.
func InitSchema(ctx context.Context, conn *sql.DB, backend string) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	statements, err := schemaFor(backend)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

func schemaFor(backend string) ([]string, error) {
	switch backend {
	case db.SQLite:
		return []string{
			`
			CREATE TABLE IF NOT EXISTS inspection_items (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				category TEXT NOT NULL,
				element TEXT NOT NULL,
				ok INTEGER NOT NULL DEFAULT 0,
				notes TEXT NOT NULL DEFAULT '',
				modified_at_ns INTEGER NOT NULL,
				UNIQUE (category, element)
			);
			`,
			`
			CREATE TABLE IF NOT EXISTS unit_info (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				unit TEXT NOT NULL DEFAULT '',
				model TEXT NOT NULL DEFAULT '',
				operator TEXT NOT NULL DEFAULT '',
				modified_at_ns INTEGER NOT NULL
			);
			`,
			`
			CREATE TABLE IF NOT EXISTS movements (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				kind TEXT NOT NULL,
				quantity INTEGER NOT NULL,
				destination TEXT NOT NULL DEFAULT '',
				unit_cost REAL NOT NULL,
				sale_price REAL,
				status TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				date_ns INTEGER NOT NULL,
				profit REAL NOT NULL DEFAULT 0
			);
			`,
			`
			CREATE INDEX IF NOT EXISTS idx_movements_date
			ON movements(date_ns);
			`,
		}, nil
	case db.Postgres:
		return []string{
			`
			CREATE TABLE IF NOT EXISTS inspection_items (
				id BIGSERIAL PRIMARY KEY,
				category TEXT NOT NULL,
				element TEXT NOT NULL,
				ok BOOLEAN NOT NULL DEFAULT FALSE,
				notes TEXT NOT NULL DEFAULT '',
				modified_at_ns BIGINT NOT NULL,
				UNIQUE (category, element)
			);
			`,
			`
			CREATE TABLE IF NOT EXISTS unit_info (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				unit TEXT NOT NULL DEFAULT '',
				model TEXT NOT NULL DEFAULT '',
				operator TEXT NOT NULL DEFAULT '',
				modified_at_ns BIGINT NOT NULL
			);
			`,
			`
			CREATE TABLE IF NOT EXISTS movements (
				id BIGSERIAL PRIMARY KEY,
				kind TEXT NOT NULL,
				quantity INTEGER NOT NULL,
				destination TEXT NOT NULL DEFAULT '',
				unit_cost DOUBLE PRECISION NOT NULL,
				sale_price DOUBLE PRECISION,
				status TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				date_ns BIGINT NOT NULL,
				profit DOUBLE PRECISION NOT NULL DEFAULT 0
			);
			`,
			`
			CREATE INDEX IF NOT EXISTS idx_movements_date
			ON movements(date_ns);
			`,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported backend %q", backend)
	}
}
