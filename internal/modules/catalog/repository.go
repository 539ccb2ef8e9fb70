package catalog

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a medicine id is unknown.
var ErrNotFound = errors.New("medicine not found")

// Repository defines catalog data storage. Methods taking a tx run inside the
// caller's transaction when tx is non-nil, so the stock-update workflow can
// fold catalog reads and writes into its single exclusive transaction.
type Repository interface {
	// UpsertReceipt folds one receipt row into the catalog: exact-string
	// name match increments stock, otherwise a new medicine is created
	// with default threshold and desired level.
	UpsertReceipt(ctx context.Context, name string, quantityReceived int) error

	GetByID(ctx context.Context, tx *sql.Tx, id string) (*Medicine, error)

	// ListAggregated groups rows by name and sums their stock.
	ListAggregated(ctx context.Context) ([]StockLevel, error)

	// DecrementStock unconditionally subtracts quantity (no zero floor)
	// and returns the new stock level.
	DecrementStock(ctx context.Context, tx *sql.Tx, id string, quantity int) (int, error)
}
