package stock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmehra-dev/medstock-backend/internal/modules/catalog"
	"github.com/rmehra-dev/medstock-backend/internal/modules/reorder"
)

// Service defines the stock-update workflow.
type Service interface {
	// UpdateStock records a consumption event, decrements catalog stock,
	// and runs the reorder check, all inside one exclusive transaction.
	// Returns the suggestion appended by the reorder check, or nil when
	// stock stayed above its threshold.
	UpdateStock(ctx context.Context, medicineID string, quantityConsumed int) (*reorder.Suggestion, error)
}

type service struct {
	db      *sql.DB
	catalog catalog.Repository
	ledger  Ledger
	queue   reorder.Repository
}

// NewService creates a new stock service.
func NewService(db *sql.DB, catalogRepo catalog.Repository, ledger Ledger, queue reorder.Repository) Service {
	return &service{
		db:      db,
		catalog: catalogRepo,
		ledger:  ledger,
		queue:   queue,
	}
}

func (s *service) UpdateStock(ctx context.Context, medicineID string, quantityConsumed int) (*reorder.Suggestion, error) {
	if quantityConsumed < 0 {
		return nil, fmt.Errorf("quantity_consumed must not be negative")
	}

	mid, err := uuid.Parse(medicineID)
	if err != nil {
		return nil, catalog.ErrNotFound
	}

	date := time.Now().Format("2006-01-02")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Decrement first so an unknown id surfaces as ErrNotFound before the
	// ledger insert trips the foreign key. No floor at zero: the decrement
	// is applied as reported.
	newStock, err := s.catalog.DecrementStock(ctx, tx, medicineID, quantityConsumed)
	if err != nil {
		return nil, err
	}

	event := &ConsumptionEvent{
		ID:               uuid.New(),
		MedicineID:       mid,
		QuantityConsumed: quantityConsumed,
		Date:             date,
	}
	if err := s.ledger.Record(ctx, tx, event); err != nil {
		return nil, err
	}

	med, err := s.catalog.GetByID(ctx, tx, medicineID)
	if err != nil {
		return nil, err
	}

	var suggestion *reorder.Suggestion
	if newStock <= med.ReorderThreshold {
		// Suggested quantity is recorded as computed, even when a
		// misconfigured desired level makes it zero or negative.
		suggestion = &reorder.Suggestion{
			ID:                uuid.New(),
			MedicineID:        mid,
			SuggestedQuantity: med.DesiredStockLevel - newStock,
			Reason:            reorder.ReasonBelowThreshold,
			DateAdded:         date,
		}
		if err := s.queue.Append(ctx, tx, suggestion); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return suggestion, nil
}
