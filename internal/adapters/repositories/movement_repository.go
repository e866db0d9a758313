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

// SQL-backed implementation of the MovementRepository port.
type SQLMovementRepository struct {
	DB      *sql.DB
	Backend string
}

func NewSQLMovementRepository(conn *sql.DB, backend string) *SQLMovementRepository {
	return &SQLMovementRepository{DB: conn, Backend: backend}
}

func (s *SQLMovementRepository) q(query string) string {
	return db.Rebind(s.Backend, query)
}

const movementColumns = `
	id,
	kind,
	quantity,
	destination,
	unit_cost,
	sale_price,
	status,
	description,
	date_ns,
	profit
`

func scanMovement(r rowScanner) (domain.Movement, error) {
	var (
		m         domain.Movement
		kind      string
		status    string
		salePrice sql.NullFloat64
		dateNs    int64
	)
	if err := r.Scan(
		&m.ID,
		&kind,
		&m.Quantity,
		&m.Destination,
		&m.UnitCost,
		&salePrice,
		&status,
		&m.Description,
		&dateNs,
		&m.Profit,
	); err != nil {
		return domain.Movement{}, err
	}

	m.Kind = domain.MovementKind(kind)
	m.Status = domain.MovementStatus(status)
	if salePrice.Valid {
		price := salePrice.Float64
		m.SalePrice = &price
	}
	m.Date = time.Unix(0, dateNs).UTC()
	return m, nil
}

func salePriceArg(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

// Return every movement, newest first.
func (s *SQLMovementRepository) ListMovements(ctx context.Context) (_ []domain.Movement, err error) {
	defer obs.Time(ctx, "movement.repo.ListMovements")(&err)

	if s.DB == nil {
		return nil, errors.New("movement repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT`+movementColumns+`FROM movements ORDER BY date_ns DESC, id DESC;`)
	if err != nil {
		return nil, fmt.Errorf("list movements: query movements table: %w", err)
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("list movements: scan row: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movements: row iteration: %w", err)
	}

	return movements, nil
}

// Return one movement, or domain.ErrNotFound.
func (s *SQLMovementRepository) GetMovement(ctx context.Context, id int64) (domain.Movement, error) {
	if s.DB == nil {
		return domain.Movement{}, errors.New("movement repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx, s.q(`SELECT`+movementColumns+`FROM movements WHERE id = ?;`), id)
	m, err := scanMovement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Movement{}, fmt.Errorf("get movement id=%d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Movement{}, fmt.Errorf("get movement id=%d: %w", id, err)
	}

	return m, nil
}

// Store a new movement and return its id.
func (s *SQLMovementRepository) InsertMovement(ctx context.Context, m domain.Movement) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("movement repository: DB is nil")
	}

	var id int64
	err := s.DB.QueryRowContext(ctx, s.q(`
	INSERT INTO movements (
		kind,
		quantity,
		destination,
		unit_cost,
		sale_price,
		status,
		description,
		date_ns,
		profit
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING id;
	`),
		string(m.Kind),
		m.Quantity,
		m.Destination,
		m.UnitCost,
		salePriceArg(m.SalePrice),
		string(m.Status),
		m.Description,
		m.Date.UnixNano(),
		m.Profit,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert movement: %w", err)
	}

	return id, nil
}

// Replace a stored movement, or return domain.ErrNotFound.
func (s *SQLMovementRepository) UpdateMovement(ctx context.Context, m domain.Movement) error {
	if s.DB == nil {
		return errors.New("movement repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, s.q(`
	UPDATE movements
	SET kind = ?,
		quantity = ?,
		destination = ?,
		unit_cost = ?,
		sale_price = ?,
		status = ?,
		description = ?,
		date_ns = ?,
		profit = ?
	WHERE id = ?;
	`),
		string(m.Kind),
		m.Quantity,
		m.Destination,
		m.UnitCost,
		salePriceArg(m.SalePrice),
		string(m.Status),
		m.Description,
		m.Date.UnixNano(),
		m.Profit,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("update movement id=%d: %w", m.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update movement id=%d: rows affected: %w", m.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("update movement id=%d: %w", m.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete every movement and return how many were removed.
func (s *SQLMovementRepository) DeleteAllMovements(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("movement repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM movements;`)
	if err != nil {
		return 0, fmt.Errorf("delete movements: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete movements: rows affected: %w", err)
	}

	return n, nil
}
