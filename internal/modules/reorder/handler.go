package reorder

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes suggestion queue HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/upcoming_orders", h.listUpcoming)
	r.Get("/generate_order", h.generateOrder)
}

func (h *Handler) listUpcoming(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) generateOrder(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.BuildOrder(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if items == nil {
		items = []OrderItem{}
	}
	respond(w, http.StatusOK, map[string][]OrderItem{"orders": items})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
