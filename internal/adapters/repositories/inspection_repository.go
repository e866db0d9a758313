package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/platform/db"
	"route-roster-service/internal/platform/obs"
	"time"
)

// SQL-backed implementation of the InspectionRepository port.
type SQLInspectionRepository struct {
	DB      *sql.DB
	Backend string
}

func NewSQLInspectionRepository(conn *sql.DB, backend string) *SQLInspectionRepository {
	return &SQLInspectionRepository{DB: conn, Backend: backend}
}

func (s *SQLInspectionRepository) q(query string) string {
	return db.Rebind(s.Backend, query)
}

// Return all checklist items in the requested order.
func (s *SQLInspectionRepository) ListItems(
	ctx context.Context,
	order domain.InspectionOrder,
) (_ []domain.InspectionItem, err error) {
	defer obs.Time(ctx, "inspection.repo.ListItems")(&err)

	if s.DB == nil {
		return nil, errors.New("inspection repository: DB is nil")
	}

	orderBy := "element, category, id"
	if order == domain.OrderByModified {
		orderBy = "modified_at_ns, id"
	}

	// Only the ORDER BY clause is interpolated, from a fixed set of values.
	query := fmt.Sprintf(`
	SELECT
		id,
		category,
		element,
		ok,
		notes,
		modified_at_ns
	FROM inspection_items
	ORDER BY %s;
	`, orderBy)

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inspection items: query inspection_items table: %w", err)
	}
	defer rows.Close()

	items := make([]domain.InspectionItem, 0, domain.CatalogSize())
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("list inspection items: scan row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inspection items: row iteration: %w", err)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(r rowScanner) (domain.InspectionItem, error) {
	var it domain.InspectionItem
	var modifiedNs int64
	if err := r.Scan(&it.ID, &it.Category, &it.Element, &it.OK, &it.Notes, &modifiedNs); err != nil {
		return domain.InspectionItem{}, err
	}
	it.ModifiedAt = time.Unix(0, modifiedNs).UTC()
	return it, nil
}

// Insert items that are not stored yet.
func (s *SQLInspectionRepository) InsertItems(ctx context.Context, items []domain.InspectionItem) (int, error) {
	if s.DB == nil {
		return 0, errors.New("inspection repository: DB is nil")
	}

	if len(items) == 0 {
		return 0, nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("insert inspection items: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, s.q(`
	INSERT INTO inspection_items (category, element, ok, notes, modified_at_ns)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (category, element) DO NOTHING;
	`))
	if err != nil {
		return 0, fmt.Errorf("insert inspection items: db prepare: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, it := range items {
		res, err := stmt.ExecContext(ctx, it.Category, it.Element, it.OK, it.Notes, it.ModifiedAt.UnixNano())
		if err != nil {
			return 0, fmt.Errorf("insert inspection item %q/%q: %w", it.Category, it.Element, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("insert inspection item %q/%q: rows affected: %w", it.Category, it.Element, err)
		}
		added += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("insert inspection items commit: %w", err)
	}

	return added, nil
}

// Apply a partial update to one item and return the stored result.
func (s *SQLInspectionRepository) UpdateItem(
	ctx context.Context,
	id int64,
	patch domain.InspectionItemPatch,
	at time.Time,
) (domain.InspectionItem, error) {
	if s.DB == nil {
		return domain.InspectionItem{}, errors.New("inspection repository: DB is nil")
	}

	ok := sql.NullBool{}
	if patch.OK != nil {
		ok = sql.NullBool{Bool: *patch.OK, Valid: true}
	}
	notes := sql.NullString{}
	if patch.Notes != nil {
		notes = sql.NullString{String: *patch.Notes, Valid: true}
	}

	res, err := s.DB.ExecContext(ctx, s.q(`
	UPDATE inspection_items
	SET ok = COALESCE(?, ok),
		notes = COALESCE(?, notes),
		modified_at_ns = ?
	WHERE id = ?;
	`), ok, notes, at.UnixNano(), id)
	if err != nil {
		return domain.InspectionItem{}, fmt.Errorf("update inspection item: exec: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return domain.InspectionItem{}, fmt.Errorf("update inspection item: rows affected: %w", err)
	}
	if n == 0 {
		return domain.InspectionItem{}, fmt.Errorf("update inspection item id=%d: %w", id, domain.ErrNotFound)
	}

	row := s.DB.QueryRowContext(ctx, s.q(`
	SELECT id, category, element, ok, notes, modified_at_ns
	FROM inspection_items
	WHERE id = ?;
	`), id)
	it, err := scanItem(row)
	if err != nil {
		return domain.InspectionItem{}, fmt.Errorf("update inspection item: read back: %w", err)
	}

	return it, nil
}

// Return the unit header row.
func (s *SQLInspectionRepository) GetUnit(ctx context.Context) (domain.UnitInfo, bool, error) {
	if s.DB == nil {
		return domain.UnitInfo{}, false, errors.New("inspection repository: DB is nil")
	}

	var u domain.UnitInfo
	var modifiedNs int64
	err := s.DB.QueryRowContext(ctx, `
	SELECT unit, model, operator, modified_at_ns
	FROM unit_info
	WHERE id = 1;
	`).Scan(&u.Unit, &u.Model, &u.Operator, &modifiedNs)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UnitInfo{}, false, nil
	}
	if err != nil {
		return domain.UnitInfo{}, false, fmt.Errorf("get unit info: %w", err)
	}

	u.ModifiedAt = time.Unix(0, modifiedNs).UTC()
	return u, true, nil
}

// Create or replace the unit header row.
func (s *SQLInspectionRepository) PutUnit(ctx context.Context, u domain.UnitInfo) error {
	if s.DB == nil {
		return errors.New("inspection repository: DB is nil")
	}

	_, err := s.DB.ExecContext(ctx, s.q(`
	INSERT INTO unit_info (id, unit, model, operator, modified_at_ns)
	VALUES (1, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE
	SET unit = EXCLUDED.unit,
		model = EXCLUDED.model,
		operator = EXCLUDED.operator,
		modified_at_ns = EXCLUDED.modified_at_ns;
	`), u.Unit, u.Model, u.Operator, u.ModifiedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("put unit info: %w", err)
	}

	return nil
}
