package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied when a receipt names a medicine the catalog has not seen.
const (
	DefaultReorderThreshold  = 30
	DefaultDesiredStockLevel = 150
)

// Medicine is one catalog row. Rows are created by receipt ingestion and
// never deleted. CurrentStock may go negative: consumption figures are
// trusted over physical reality and decrements have no floor.
type Medicine struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	CurrentStock      int       `json:"current_stock"`
	ReorderThreshold  int       `json:"reorder_threshold"`
	DesiredStockLevel int       `json:"desired_stock_level"`
	CreatedAt         time.Time `json:"created_at"`
}

// StockLevel is an aggregated listing entry: rows sharing a name are summed.
type StockLevel struct {
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
}
