package reorder

import (
	"context"
	"database/sql"
)

// Repository defines suggestion queue storage. Append takes a tx so the
// stock-update workflow can write the suggestion inside its own transaction.
type Repository interface {
	Append(ctx context.Context, tx *sql.Tx, s *Suggestion) error

	// ListUpcoming groups outstanding suggestions by medicine name,
	// summing quantities and taking the most recent date, newest first.
	ListUpcoming(ctx context.Context) ([]UpcomingOrder, error)

	// BuildOrder groups outstanding suggestions by medicine id and name.
	BuildOrder(ctx context.Context) ([]OrderItem, error)
}
