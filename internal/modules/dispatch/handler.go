package dispatch

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the order send endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/send_order", h.sendOrder)
}

func (h *Handler) sendOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VendorEmail string `json:"vendor_email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.VendorEmail == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "vendor_email is required"})
		return
	}

	result, err := h.service.Send(r.Context(), req.VendorEmail)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": result.Message})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
