package database

import (
	"context"
	"fmt"
)

// Schema statements, applied in order. CREATE TABLE IF NOT EXISTS keeps
// Migrate safe to run at every boot.
//
// medicines.name is intentionally not UNIQUE: receipt upserts match by exact
// string, and read paths re-aggregate with GROUP BY name, so rows that differ
// only in case can coexist.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS medicines (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		current_stock       INTEGER NOT NULL,
		reorder_threshold   INTEGER NOT NULL,
		desired_stock_level INTEGER NOT NULL,
		created_at          TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS consumption_history (
		id                TEXT PRIMARY KEY,
		medicine_id       TEXT NOT NULL REFERENCES medicines(id),
		quantity_consumed INTEGER NOT NULL,
		date              TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS upcoming_order_list (
		id                 TEXT PRIMARY KEY,
		medicine_id        TEXT NOT NULL REFERENCES medicines(id),
		suggested_quantity INTEGER NOT NULL,
		reason             TEXT NOT NULL,
		date_added         TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_consumption_medicine ON consumption_history(medicine_id)`,
	`CREATE INDEX IF NOT EXISTS idx_upcoming_medicine ON upcoming_order_list(medicine_id)`,
}

// Migrate creates the three tables the system persists to.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
