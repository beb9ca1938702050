package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"time"

	budget "github.com/Chrisvtg92/the-hive-dashboard/internal/budget/domain"
	budgetexcel "github.com/Chrisvtg92/the-hive-dashboard/internal/budget/infrastructure/excel"
	"github.com/Chrisvtg92/the-hive-dashboard/internal/export"
	history "github.com/Chrisvtg92/the-hive-dashboard/internal/history/domain"
	"github.com/Chrisvtg92/the-hive-dashboard/internal/observability/metrics"
	recoapp "github.com/Chrisvtg92/the-hive-dashboard/internal/reconciliation/application"
	reconciliation "github.com/Chrisvtg92/the-hive-dashboard/internal/reconciliation/domain"
	report "github.com/Chrisvtg92/the-hive-dashboard/internal/report/domain"
	reportexcel "github.com/Chrisvtg92/the-hive-dashboard/internal/report/infrastructure/excel"
)

// maxFormBytes caps a whole reconciliation batch upload.
const maxFormBytes = 64 << 20

// Handler handles reconciliation and export APIs under /api/v1.
type Handler struct {
	parser       *reportexcel.DailyParser
	budgetLoader *budgetexcel.Loader
	merger       *recoapp.PriorYearMerger
	reconciler   *recoapp.Service
	history      history.Repository
}

// NewHandler constructs a handler.
func NewHandler(
	parser *reportexcel.DailyParser,
	budgetLoader *budgetexcel.Loader,
	merger *recoapp.PriorYearMerger,
	reconciler *recoapp.Service,
	historyRepo history.Repository,
) (*Handler, error) {
	if parser == nil {
		return nil, errors.New("reconciliation handler: nil parser")
	}
	if budgetLoader == nil {
		return nil, errors.New("reconciliation handler: nil budget loader")
	}
	if merger == nil {
		return nil, errors.New("reconciliation handler: nil merger")
	}
	if reconciler == nil {
		return nil, errors.New("reconciliation handler: nil reconciler")
	}
	if historyRepo == nil {
		return nil, errors.New("reconciliation handler: nil history repository")
	}
	return &Handler{
		parser:       parser,
		budgetLoader: budgetLoader,
		merger:       merger,
		reconciler:   reconciler,
		history:      historyRepo,
	}, nil
}

// ServeHTTP dispatches reconciliation and export routes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if path == "/api/v1/reconciliation" && r.Method == http.MethodPost {
		h.handleReconcile(w, r)
		return
	}
	if path == "/api/v1/exports/report.xlsx" && r.Method == http.MethodPost {
		h.handleExportXLSX(w, r)
		return
	}
	if path == "/api/v1/exports/daily-summary.pdf" && r.Method == http.MethodPost {
		h.handleExportPDF(w, r)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

// batch is the decoded multipart input shared by the reconciliation
// and workbook-export routes.
type batch struct {
	budgetLines []budget.Line
	priorTotals map[budget.MonthKey]reconciliation.Totals
	summaries   []*report.DailySummary
	warnings    []recoapp.Warning
}

func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	result := "success"
	defer func() {
		metrics.ObserveReconcile(result, time.Since(start))
	}()

	in, err := h.readBatch(r, true)
	if err != nil {
		result = "error"
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	records, err := h.reconciler.Reconcile(in.summaries, in.budgetLines, in.priorTotals)
	if err != nil {
		result = "error"
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	resp := struct {
		Records  []reconciliation.MonthlyRecord `json:"records"`
		Warnings []recoapp.Warning              `json:"warnings"`
	}{Records: records, Warnings: in.warnings}
	if resp.Warnings == nil {
		resp.Warnings = []recoapp.Warning{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	result := "success"
	defer func() {
		metrics.ObserveExport("xlsx", result, time.Since(start))
	}()

	in, err := h.readBatch(r, false)
	if err != nil {
		result = "error"
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var records []reconciliation.MonthlyRecord
	if len(in.budgetLines) > 0 {
		records, err = h.reconciler.Reconcile(in.summaries, in.budgetLines, in.priorTotals)
		if err != nil {
			result = "error"
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
	}
	entries, err := h.history.List(r.Context(), time.Time{}, time.Time{})
	if err != nil {
		result = "error"
		http.Error(w, "history unavailable", http.StatusInternalServerError)
		return
	}
	data, err := export.BuildReportXLSX(latestSummary(in.summaries), records, entries)
	if err != nil {
		result = "error"
		http.Error(w, "export xlsx error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	result := "success"
	defer func() {
		metrics.ObserveExport("pdf", result, time.Since(start))
	}()

	if err := r.ParseMultipartForm(maxFormBytes); err != nil {
		result = "error"
		http.Error(w, "expected multipart form upload", http.StatusBadRequest)
		return
	}
	files, err := h.readFiles(r, "file")
	if err != nil || len(files) == 0 {
		result = "error"
		http.Error(w, "missing form file file", http.StatusBadRequest)
		return
	}
	summary, err := h.parser.ParseSummary(files[0].Data)
	if err != nil {
		result = "error"
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	data, err := export.BuildDailySummaryPDF(summary)
	if err != nil {
		result = "error"
		http.Error(w, "export pdf error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// readBatch decodes the budget/prior/daily multipart fields. A corrupt
// prior-year or daily file becomes a warning; a corrupt budget file is
// fatal because every downstream join anchors on it.
func (h *Handler) readBatch(r *http.Request, budgetRequired bool) (*batch, error) {
	if err := r.ParseMultipartForm(maxFormBytes); err != nil {
		return nil, errors.New("expected multipart form upload")
	}

	out := &batch{}

	budgetFiles, err := h.readFiles(r, "budget")
	if err != nil {
		return nil, err
	}
	if len(budgetFiles) == 0 && budgetRequired {
		return nil, errors.New("missing form file budget")
	}
	if len(budgetFiles) > 0 {
		lines, err := h.budgetLoader.Load(budgetFiles[0].Data)
		if err != nil {
			return nil, err
		}
		out.budgetLines = lines
	}

	priorFiles, err := h.readFiles(r, "prior")
	if err != nil {
		return nil, err
	}
	totals, warnings := h.merger.Merge(priorFiles)
	out.priorTotals = totals
	out.warnings = warnings

	dailyFiles, err := h.readFiles(r, "daily")
	if err != nil {
		return nil, err
	}
	for _, f := range dailyFiles {
		summary, err := h.parser.ParseSummary(f.Data)
		if err != nil {
			out.warnings = append(out.warnings, recoapp.Warning{File: f.Name, Err: err.Error()})
			continue
		}
		out.summaries = append(out.summaries, summary)
	}
	return out, nil
}

// readFiles reads every part with the given field name.
func (h *Handler) readFiles(r *http.Request, field string) ([]recoapp.File, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	files := make([]recoapp.File, 0, len(headers))
	for _, header := range headers {
		data, err := readPart(header)
		if err != nil {
			return nil, errors.New("reading upload " + header.Filename + " failed")
		}
		files = append(files, recoapp.File{Name: header.Filename, Data: data})
	}
	return files, nil
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// latestSummary picks the most recent day out of a batch for the
// workbook's daily sheet.
func latestSummary(summaries []*report.DailySummary) *report.DailySummary {
	if len(summaries) == 0 {
		return nil
	}
	sorted := make([]*report.DailySummary, len(summaries))
	copy(sorted, summaries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date().Before(sorted[j].Date()) })
	return sorted[len(sorted)-1]
}
