package ingestion

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rmehra-dev/medstock-backend/pkg/spreadsheet"
)

// Handler exposes the receipt upload endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/upload_excel", h.uploadExcel)
}

func (h *Handler) uploadExcel(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "file is required"})
		return
	}
	defer file.Close()

	if !strings.HasSuffix(header.Filename, ".xlsx") {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Only .xlsx files are allowed"})
		return
	}

	// Parse the whole sheet before any transaction opens.
	rows, err := spreadsheet.ReadReceipts(file)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	summary, err := h.service.Ingest(r.Context(), rows)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidRow) {
			status = http.StatusBadRequest
		}
		// Rows folded before the failure stay committed.
		respond(w, status, map[string]interface{}{
			"error":          err.Error(),
			"rows_processed": summary.RowsProcessed,
		})
		return
	}

	respond(w, http.StatusOK, map[string]string{"message": "Excel processed and stock updated"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
