package stock

import (
	"context"
	"database/sql"
)

// Ledger defines consumption history storage. Record runs inside the caller's
// transaction when tx is non-nil.
type Ledger interface {
	Record(ctx context.Context, tx *sql.Tx, event *ConsumptionEvent) error
}
