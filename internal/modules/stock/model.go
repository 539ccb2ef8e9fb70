package stock

import "github.com/google/uuid"

// ConsumptionEvent is one append-only ledger row recording a sale.
// Events are immutable once written.
type ConsumptionEvent struct {
	ID               uuid.UUID `json:"id"`
	MedicineID       uuid.UUID `json:"medicine_id"`
	QuantityConsumed int       `json:"quantity_consumed"`
	Date             string    `json:"date"` // YYYY-MM-DD
}

// UpdateStockRequest is the payload for recording a consumption event.
type UpdateStockRequest struct {
	MedicineID       string `json:"medicine_id"`
	QuantityConsumed int    `json:"quantity_consumed"`
}
