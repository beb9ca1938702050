package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	history "github.com/Chrisvtg92/the-hive-dashboard/internal/history/domain"
	reportapp "github.com/Chrisvtg92/the-hive-dashboard/internal/report/application"
	report "github.com/Chrisvtg92/the-hive-dashboard/internal/report/domain"
)

// maxUploadBytes caps a single daily export upload.
const maxUploadBytes = 16 << 20

// Handler handles daily report APIs under /api/v1.
type Handler struct {
	service *reportapp.Service
}

// NewHandler constructs a handler.
func NewHandler(service *reportapp.Service) (*Handler, error) {
	if service == nil {
		return nil, errors.New("report handler: nil service")
	}
	return &Handler{service: service}, nil
}

// ServeHTTP dispatches report routes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if path == "/api/v1/reports/daily" && r.Method == http.MethodPost {
		h.handleUpload(w, r)
		return
	}
	if path == "/api/v1/history" && r.Method == http.MethodGet {
		h.handleHistory(w, r)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	filename, data, err := readUpload(r, "file")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := h.service.IngestDaily(r.Context(), filename, data)
	if err != nil {
		respondParseError(w, err)
		return
	}
	entry, err := history.NewEntry(result.Summary)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	resp := struct {
		Summary      history.Entry `json:"summary"`
		InvalidCells int           `json:"invalid_cells"`
		DroppedRows  int           `json:"dropped_rows"`
	}{Summary: entry, InvalidCells: result.InvalidCells, DroppedRows: result.DroppedRows}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	from, err := parseDateParam(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "invalid from date", http.StatusBadRequest)
		return
	}
	to, err := parseDateParam(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "invalid to date", http.StatusBadRequest)
		return
	}
	entries, err := h.service.History(r.Context(), from, to)
	if err != nil {
		http.Error(w, "history unavailable", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}

// readUpload pulls one named file out of a multipart form.
func readUpload(r *http.Request, field string) (string, []byte, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", nil, errors.New("expected multipart form upload")
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", nil, errors.New("missing form file " + field)
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return "", nil, errors.New("reading upload failed")
	}
	if len(data) > maxUploadBytes {
		return "", nil, errors.New("upload too large")
	}
	return header.Filename, data, nil
}

// parseDateParam reads an optional yyyy-mm-dd query value; empty means
// unbounded.
func parseDateParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}

// respondParseError maps structural extraction failures to 422 so the
// client can distinguish a malformed export from a bad request.
func respondParseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, report.ErrDateNotFound),
		errors.Is(err, report.ErrHeaderNotFound),
		errors.Is(err, report.ErrCoversColumnNotFound),
		errors.Is(err, report.ErrRevenueColumnNotFound):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}
