package ingestion

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"
)

func multipartUpload(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload_excel", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func receiptSheet(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "medicine_name")
	f.SetCellValue(sheet, "B1", "quantity_received")
	for i, row := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row[1])
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("writing workbook: %v", err)
	}
	return buf.Bytes()
}

func TestUploadExcel(t *testing.T) {
	svc, repo, ctx := setupIngestionTest(t)
	router := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(router)

	t.Run("rejects non-xlsx extension", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartUpload(t, "stock.csv", []byte("medicine_name,quantity_received")))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects missing file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/upload_excel", nil)
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("processes a valid sheet", func(t *testing.T) {
		sheet := receiptSheet(t, [][]interface{}{
			{"Paracetamol", 100},
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartUpload(t, "stock.xlsx", sheet))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		levels, err := repo.ListAggregated(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(levels) != 1 || levels[0].CurrentStock != 100 {
			t.Errorf("expected Paracetamol/100 in catalog, got %+v", levels)
		}
	})
}
