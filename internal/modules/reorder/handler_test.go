package reorder

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestGenerateOrderEndpoint(t *testing.T) {
	repo, db, ctx := setupReorderTest(t)
	router := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(router)

	t.Run("empty queue returns empty orders", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/generate_order", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp map[string][]OrderItem
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if len(resp["orders"]) != 0 {
			t.Errorf("expected no orders, got %+v", resp["orders"])
		}
	})

	t.Run("returns grouped order lines", func(t *testing.T) {
		para := seedMedicine(t, db, "Paracetamol")
		appendSuggestion(t, repo, ctx, para, 130, "2026-08-30")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/generate_order", nil))

		var resp map[string][]OrderItem
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		orders := resp["orders"]
		if len(orders) != 1 || orders[0].Name != "Paracetamol" || orders[0].Quantity != 130 {
			t.Errorf("unexpected response %+v", orders)
		}
	})
}
