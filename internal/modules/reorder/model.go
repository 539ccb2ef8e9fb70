package reorder

import "github.com/google/uuid"

// ReasonBelowThreshold is the reason recorded on every threshold-triggered
// suggestion.
const ReasonBelowThreshold = "Stock below threshold"

// Suggestion is one queued recommendation to purchase more of a medicine.
// Suggestions accumulate per medicine and are never merged, updated, or
// deleted; aggregation happens only on the read paths.
type Suggestion struct {
	ID                uuid.UUID `json:"id"`
	MedicineID        uuid.UUID `json:"medicine_id"`
	SuggestedQuantity int       `json:"suggested_quantity"`
	Reason            string    `json:"reason"`
	DateAdded         string    `json:"date_added"` // YYYY-MM-DD
}

// UpcomingOrder is one row of the aggregated backlog listing.
type UpcomingOrder struct {
	MedicineName      string `json:"medicine_name"`
	SuggestedQuantity int    `json:"suggested_quantity"`
	DateAdded         string `json:"date_added"`
}

// OrderItem is one line of a vendor-facing order, grouped by medicine.
type OrderItem struct {
	MedicineID uuid.UUID `json:"medicine_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
}
