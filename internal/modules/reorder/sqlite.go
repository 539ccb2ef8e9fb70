package reorder

import (
	"context"
	"database/sql"
	"fmt"
)

type sqliteRepo struct{ db *sql.DB }

// NewSQLiteRepository creates a suggestion queue repository over the embedded store.
func NewSQLiteRepository(db *sql.DB) Repository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Append(ctx context.Context, tx *sql.Tx, s *Suggestion) error {
	var exec interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	} = r.db
	if tx != nil {
		exec = tx
	}
	_, err := exec.ExecContext(ctx, `
		INSERT INTO upcoming_order_list (id, medicine_id, suggested_quantity, reason, date_added)
		VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.MedicineID, s.SuggestedQuantity, s.Reason, s.DateAdded)
	if err != nil {
		return fmt.Errorf("append suggestion: %w", err)
	}
	return nil
}

func (r *sqliteRepo) ListUpcoming(ctx context.Context) ([]UpcomingOrder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.name, SUM(u.suggested_quantity) AS total_qty, MAX(u.date_added) AS last_date
		FROM upcoming_order_list u
		JOIN medicines m ON u.medicine_id = m.id
		GROUP BY m.name
		ORDER BY last_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []UpcomingOrder
	for rows.Next() {
		var o UpcomingOrder
		if err := rows.Scan(&o.MedicineName, &o.SuggestedQuantity, &o.DateAdded); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *sqliteRepo) BuildOrder(ctx context.Context) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.name, SUM(u.suggested_quantity) AS total_qty
		FROM upcoming_order_list u
		JOIN medicines m ON u.medicine_id = m.id
		GROUP BY m.id, m.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.MedicineID, &it.Name, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
