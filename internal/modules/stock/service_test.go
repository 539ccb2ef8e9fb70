package stock

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/rmehra-dev/medstock-backend/internal/modules/catalog"
	"github.com/rmehra-dev/medstock-backend/internal/modules/reorder"
	"github.com/rmehra-dev/medstock-backend/pkg/database"
)

type stockFixture struct {
	db      *sql.DB
	catalog catalog.Repository
	queue   reorder.Repository
	service Service
	ctx     context.Context
}

func setupStockTest(t *testing.T) *stockFixture {
	t.Helper()
	db, err := database.NewInMemory()
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	catalogRepo := catalog.NewSQLiteRepository(db.DB)
	queue := reorder.NewSQLiteRepository(db.DB)
	ledger := NewSQLiteLedger(db.DB)
	return &stockFixture{
		db:      db.DB,
		catalog: catalogRepo,
		queue:   queue,
		service: NewService(db.DB, catalogRepo, ledger, queue),
		ctx:     ctx,
	}
}

func (f *stockFixture) seed(t *testing.T, name string, qty int) string {
	t.Helper()
	if err := f.catalog.UpsertReceipt(f.ctx, name, qty); err != nil {
		t.Fatalf("seeding %s: %v", name, err)
	}
	var id string
	if err := f.db.QueryRowContext(f.ctx,
		`SELECT id FROM medicines WHERE name = ? LIMIT 1`, name).Scan(&id); err != nil {
		t.Fatalf("finding %s: %v", name, err)
	}
	return id
}

func (f *stockFixture) countRows(t *testing.T, table string) int {
	t.Helper()
	var n int
	if err := f.db.QueryRowContext(f.ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("counting %s: %v", table, err)
	}
	return n
}

func TestUpdateStock_DecrementAndLedger(t *testing.T) {
	f := setupStockTest(t)
	id := f.seed(t, "Paracetamol", 200)

	if _, err := f.service.UpdateStock(f.ctx, id, 30); err != nil {
		t.Fatalf("update stock: %v", err)
	}

	med, err := f.catalog.GetByID(f.ctx, nil, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if med.CurrentStock != 170 {
		t.Errorf("expected stock 170, got %d", med.CurrentStock)
	}

	if n := f.countRows(t, "consumption_history"); n != 1 {
		t.Fatalf("expected 1 ledger row, got %d", n)
	}
	var qty int
	var date string
	if err := f.db.QueryRowContext(f.ctx,
		`SELECT quantity_consumed, date FROM consumption_history`).Scan(&qty, &date); err != nil {
		t.Fatalf("reading ledger: %v", err)
	}
	if qty != 30 {
		t.Errorf("expected quantity 30, got %d", qty)
	}
	if want := time.Now().Format("2006-01-02"); date != want {
		t.Errorf("expected date %s, got %s", want, date)
	}
}

func TestUpdateStock_ReorderCheck(t *testing.T) {
	t.Run("stock at threshold appends suggestion", func(t *testing.T) {
		f := setupStockTest(t)
		id := f.seed(t, "Aspirin", 40)

		suggestion, err := f.service.UpdateStock(f.ctx, id, 10) // 40-10 = 30 = threshold
		if err != nil {
			t.Fatalf("update stock: %v", err)
		}
		if suggestion == nil {
			t.Fatal("expected a suggestion at the threshold boundary")
		}
		if suggestion.SuggestedQuantity != 120 { // 150 - 30
			t.Errorf("expected suggested quantity 120, got %d", suggestion.SuggestedQuantity)
		}
		if suggestion.Reason != reorder.ReasonBelowThreshold {
			t.Errorf("unexpected reason %q", suggestion.Reason)
		}
		if n := f.countRows(t, "upcoming_order_list"); n != 1 {
			t.Errorf("expected 1 suggestion row, got %d", n)
		}
	})

	t.Run("stock above threshold appends nothing", func(t *testing.T) {
		f := setupStockTest(t)
		id := f.seed(t, "Aspirin", 100)

		suggestion, err := f.service.UpdateStock(f.ctx, id, 10)
		if err != nil {
			t.Fatalf("update stock: %v", err)
		}
		if suggestion != nil {
			t.Errorf("unexpected suggestion %+v", suggestion)
		}
		if n := f.countRows(t, "upcoming_order_list"); n != 0 {
			t.Errorf("expected empty queue, got %d rows", n)
		}
	})

	t.Run("repeat qualifying events accumulate", func(t *testing.T) {
		f := setupStockTest(t)
		id := f.seed(t, "Aspirin", 40)

		if _, err := f.service.UpdateStock(f.ctx, id, 15); err != nil {
			t.Fatalf("update stock: %v", err)
		}
		if _, err := f.service.UpdateStock(f.ctx, id, 5); err != nil {
			t.Fatalf("update stock: %v", err)
		}
		if n := f.countRows(t, "upcoming_order_list"); n != 2 {
			t.Errorf("expected 2 suggestion rows, got %d", n)
		}
	})
}

func TestUpdateStock_Scenario(t *testing.T) {
	// Upload 100 Paracetamol, sell 80: stock 20 is under the default
	// threshold of 30, so a suggestion for 150-20=130 appears.
	f := setupStockTest(t)
	id := f.seed(t, "Paracetamol", 100)

	suggestion, err := f.service.UpdateStock(f.ctx, id, 80)
	if err != nil {
		t.Fatalf("update stock: %v", err)
	}
	if suggestion == nil || suggestion.SuggestedQuantity != 130 {
		t.Fatalf("expected suggestion of 130, got %+v", suggestion)
	}

	items, err := f.queue.BuildOrder(f.ctx)
	if err != nil {
		t.Fatalf("build order: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 order item, got %d", len(items))
	}
	if items[0].Name != "Paracetamol" || items[0].Quantity != 130 {
		t.Errorf("got %+v, want Paracetamol/130", items[0])
	}
}

func TestUpdateStock_UnknownID(t *testing.T) {
	f := setupStockTest(t)
	f.seed(t, "Paracetamol", 100)

	_, err := f.service.UpdateStock(f.ctx, "5bd9e9ed-13e4-4b0a-bd9c-15b4b3d0b2f5", 10)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// The failed call must leave no partial mutation behind.
	if n := f.countRows(t, "consumption_history"); n != 0 {
		t.Errorf("expected empty ledger, got %d rows", n)
	}
}

func TestUpdateStock_NegativeQuantity(t *testing.T) {
	f := setupStockTest(t)
	id := f.seed(t, "Paracetamol", 100)

	if _, err := f.service.UpdateStock(f.ctx, id, -5); err == nil {
		t.Fatal("expected error for negative quantity")
	}
	if n := f.countRows(t, "consumption_history"); n != 0 {
		t.Errorf("expected empty ledger, got %d rows", n)
	}
}
