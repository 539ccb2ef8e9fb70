package stock

import (
	"context"
	"database/sql"
	"fmt"
)

type sqliteLedger struct{ db *sql.DB }

// NewSQLiteLedger creates a consumption ledger over the embedded store.
func NewSQLiteLedger(db *sql.DB) Ledger { return &sqliteLedger{db: db} }

func (r *sqliteLedger) Record(ctx context.Context, tx *sql.Tx, event *ConsumptionEvent) error {
	var exec interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	} = r.db
	if tx != nil {
		exec = tx
	}
	_, err := exec.ExecContext(ctx, `
		INSERT INTO consumption_history (id, medicine_id, quantity_consumed, date)
		VALUES (?, ?, ?, ?)`,
		event.ID, event.MedicineID, event.QuantityConsumed, event.Date)
	if err != nil {
		return fmt.Errorf("record consumption: %w", err)
	}
	return nil
}
