// Package ingestion folds uploaded receipt sheets into the catalog.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rmehra-dev/medstock-backend/internal/modules/catalog"
	"github.com/rmehra-dev/medstock-backend/pkg/spreadsheet"
)

// ErrInvalidRow marks a receipt row whose quantity does not parse as a
// non-negative integer.
var ErrInvalidRow = errors.New("invalid receipt row")

// Summary reports how much of a sheet was folded into the catalog.
type Summary struct {
	RowsProcessed int `json:"rows_processed"`
}

// Service defines receipt sheet ingestion.
type Service interface {
	// Ingest folds rows into the catalog one at a time. Each row commits
	// before the next is examined, so a bad row aborts the sheet while
	// everything before it stays applied. There is no rollback.
	Ingest(ctx context.Context, rows []spreadsheet.ReceiptRow) (*Summary, error)
}

type service struct {
	catalog catalog.Repository
}

// NewService creates a new ingestion service.
func NewService(catalogRepo catalog.Repository) Service {
	return &service{catalog: catalogRepo}
}

func (s *service) Ingest(ctx context.Context, rows []spreadsheet.ReceiptRow) (*Summary, error) {
	summary := &Summary{}
	for i, row := range rows {
		qty, err := strconv.Atoi(row.Quantity)
		if err != nil || qty < 0 {
			return summary, fmt.Errorf("%w: row %d: quantity_received %q is not a non-negative integer",
				ErrInvalidRow, i+1, row.Quantity)
		}
		if err := s.catalog.UpsertReceipt(ctx, row.Name, qty); err != nil {
			return summary, fmt.Errorf("row %d: %w", i+1, err)
		}
		summary.RowsProcessed++
	}
	return summary, nil
}
