package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type sqliteRepo struct{ db *sql.DB }

// NewSQLiteRepository creates a catalog repository over the embedded store.
func NewSQLiteRepository(db *sql.DB) Repository { return &sqliteRepo{db: db} }

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *sqliteRepo) on(tx *sql.Tx) dbtx {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *sqliteRepo) UpsertReceipt(ctx context.Context, name string, quantityReceived int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Exact-string match only. Case variants land in separate rows; the
	// read path re-aggregates by name.
	var id string
	var current int
	err = tx.QueryRowContext(ctx,
		`SELECT id, current_stock FROM medicines WHERE name = ? LIMIT 1`, name).
		Scan(&id, &current)
	switch {
	case err == nil:
		if _, err := tx.ExecContext(ctx,
			`UPDATE medicines SET current_stock = ? WHERE id = ?`,
			current+quantityReceived, id); err != nil {
			return fmt.Errorf("update stock: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO medicines (id, name, current_stock, reorder_threshold, desired_stock_level, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.New(), name, quantityReceived,
			DefaultReorderThreshold, DefaultDesiredStockLevel,
			time.Now().UTC().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("insert medicine: %w", err)
		}
	default:
		return fmt.Errorf("lookup medicine: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteRepo) GetByID(ctx context.Context, tx *sql.Tx, id string) (*Medicine, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	m := &Medicine{}
	var createdStr string
	err = r.on(tx).QueryRowContext(ctx, `
		SELECT id, name, current_stock, reorder_threshold, desired_stock_level, created_at
		FROM medicines WHERE id = ?`, uid).
		Scan(&m.ID, &m.Name, &m.CurrentStock, &m.ReorderThreshold,
			&m.DesiredStockLevel, &createdStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	return m, nil
}

func (r *sqliteRepo) ListAggregated(ctx context.Context) ([]StockLevel, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, SUM(current_stock) AS total_stock
		FROM medicines
		GROUP BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []StockLevel
	for rows.Next() {
		var l StockLevel
		if err := rows.Scan(&l.Name, &l.CurrentStock); err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

func (r *sqliteRepo) DecrementStock(ctx context.Context, tx *sql.Tx, id string, quantity int) (int, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return 0, ErrNotFound
	}
	res, err := r.on(tx).ExecContext(ctx,
		`UPDATE medicines SET current_stock = current_stock - ? WHERE id = ?`,
		quantity, uid)
	if err != nil {
		return 0, fmt.Errorf("decrement stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, ErrNotFound
	}

	var newStock int
	err = r.on(tx).QueryRowContext(ctx,
		`SELECT current_stock FROM medicines WHERE id = ?`, uid).Scan(&newStock)
	if err != nil {
		return 0, fmt.Errorf("read stock after decrement: %w", err)
	}
	return newStock, nil
}
