package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	history "github.com/Chrisvtg92/the-hive-dashboard/internal/history/domain"
	memoryrepo "github.com/Chrisvtg92/the-hive-dashboard/internal/history/infrastructure/memory"
	reportapp "github.com/Chrisvtg92/the-hive-dashboard/internal/report/application"
	"github.com/Chrisvtg92/the-hive-dashboard/internal/report/infrastructure/excel"
)

type stubClock struct{}

func (stubClock) Now() time.Time { return time.Unix(1700000000, 0) }

func newHandler(t *testing.T) (*Handler, *memoryrepo.Repository) {
	t.Helper()
	parser, err := excel.NewDailyParser(excel.NewLocator(0, 0))
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	repo := memoryrepo.NewRepository()
	svc, err := reportapp.NewService(parser, repo, log.New(io.Discard, "", 0), stubClock{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	h, err := NewHandler(svc)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return h, repo
}

func workbookBytes(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	for r, row := range rows {
		for c, value := range row {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func multipartUpload(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func TestUploadDailyReport(t *testing.T) {
	h, repo := newHandler(t)
	payload := workbookBytes(t, [][]string{
		{"", "", "14/03/2025"},
		{"Centre", "Couverts", "Total TTC"},
		{"Restaurant"},
		{"Midi", "50", "1.234,56 €"},
		{"Soir", "30", "800,00 €"},
	})
	body, contentType := multipartUpload(t, "file", "Cumulatif_20250314.xlsx", payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/daily", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Summary      history.Entry `json:"summary"`
		InvalidCells int           `json:"invalid_cells"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Summary.TotalCovers != 80 {
		t.Fatalf("total covers = %d", resp.Summary.TotalCovers)
	}
	if math.Abs(resp.Summary.TotalRevenue-2034.56) > 1e-9 {
		t.Fatalf("total revenue = %v", resp.Summary.TotalRevenue)
	}

	entries, err := repo.List(context.Background(), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected history entry after upload, got %d", len(entries))
	}
}

func TestUploadMalformedExport(t *testing.T) {
	h, _ := newHandler(t)
	payload := workbookBytes(t, [][]string{
		{"Centre", "Couverts", "Total TTC"},
	})
	body, contentType := multipartUpload(t, "file", "bad.xlsx", payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/daily", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestUploadMissingFile(t *testing.T) {
	h, _ := newHandler(t)
	body, contentType := multipartUpload(t, "wrong", "x.xlsx", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/daily", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHistoryRange(t *testing.T) {
	h, repo := newHandler(t)
	for _, day := range []string{"2025-03-10", "2025-03-14", "2025-04-01"} {
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			t.Fatalf("parse date: %v", err)
		}
		if err := repo.Upsert(context.Background(), history.Entry{Date: date, TotalRevenue: 100}); err != nil {
			t.Fatalf("seed history: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?from=2025-03-01&to=2025-03-31", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var entries []history.Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected two march entries, got %d", len(entries))
	}
}

func TestHistoryBadDate(t *testing.T) {
	h, _ := newHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?from=14/03/2025", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
