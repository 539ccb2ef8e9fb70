package stock

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmehra-dev/medstock-backend/internal/modules/catalog"
)

// Handler exposes the stock-update HTTP endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/update_stock", h.updateStock)
}

func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	var req UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.MedicineID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "medicine_id is required"})
		return
	}
	if req.QuantityConsumed < 0 {
		respond(w, http.StatusBadRequest, map[string]string{"error": "quantity_consumed must not be negative"})
		return
	}

	_, err := h.service.UpdateStock(r.Context(), req.MedicineID, req.QuantityConsumed)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Stock updated"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
