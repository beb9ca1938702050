package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	history "github.com/Chrisvtg92/the-hive-dashboard/internal/history/domain"
	"github.com/Chrisvtg92/the-hive-dashboard/internal/observability/metrics"
	report "github.com/Chrisvtg92/the-hive-dashboard/internal/report/domain"
	"github.com/Chrisvtg92/the-hive-dashboard/internal/report/infrastructure/excel"
)

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IngestResult is the outcome of one daily upload.
type IngestResult struct {
	Summary      *report.DailySummary
	Rows         []report.RevenueRow
	InvalidCells int
	DroppedRows  int
}

// Service orchestrates a daily upload: parse the export, persist the
// flattened day to the history log, record metrics.
type Service struct {
	parser  *excel.DailyParser
	history history.Repository
	logger  *log.Logger
	clock   Clock
}

// NewService constructs an ingest service.
func NewService(parser *excel.DailyParser, repo history.Repository, logger *log.Logger, clock Clock) (*Service, error) {
	if parser == nil {
		return nil, errors.New("report service: nil parser")
	}
	if repo == nil {
		return nil, errors.New("report service: nil history repository")
	}
	if logger == nil {
		return nil, errors.New("report service: nil logger")
	}
	if clock == nil {
		return nil, errors.New("report service: nil clock")
	}
	return &Service{parser: parser, history: repo, logger: logger, clock: clock}, nil
}

// IngestDaily parses one export and upserts its day into history.
// Structural parse failures are returned as-is so the boundary can
// name the missing element; a history write failure does not invalidate
// the parsed summary.
func (s *Service) IngestDaily(ctx context.Context, filename string, data []byte) (*IngestResult, error) {
	start := s.clock.Now()
	parsed, err := s.parser.Parse(data)
	if err != nil {
		metrics.ObserveDailyParse("error", s.clock.Now().Sub(start))
		metrics.IncParseError(parseErrorReason(err))
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	metrics.ObserveDailyParse("success", s.clock.Now().Sub(start))
	metrics.AddInvalidCells(parsed.InvalidCells)
	metrics.AddDroppedRows(parsed.DroppedRows)

	entry, err := history.NewEntry(parsed.Summary)
	if err != nil {
		return nil, err
	}
	if err := s.history.Upsert(ctx, entry); err != nil {
		metrics.IncHistoryUpsert("error")
		s.logger.Printf("history upsert failed for %s (%s): %v", filename, entry.Date.Format("2006-01-02"), err)
		return nil, fmt.Errorf("persist %s: %w", filename, err)
	}
	metrics.IncHistoryUpsert("success")

	s.logger.Printf("ingested %s: date=%s covers=%d revenue=%.2f invalid_cells=%d dropped_rows=%d",
		filename,
		parsed.Summary.Date().Format("2006-01-02"),
		parsed.Summary.TotalCovers(),
		parsed.Summary.TotalRevenue(),
		parsed.InvalidCells,
		parsed.DroppedRows,
	)

	return &IngestResult{
		Summary:      parsed.Summary,
		Rows:         parsed.Rows,
		InvalidCells: parsed.InvalidCells,
		DroppedRows:  parsed.DroppedRows,
	}, nil
}

// History lists the durable day log.
func (s *Service) History(ctx context.Context, from, to time.Time) ([]history.Entry, error) {
	return s.history.List(ctx, from, to)
}

func parseErrorReason(err error) string {
	switch {
	case errors.Is(err, report.ErrDateNotFound):
		return "date_not_found"
	case errors.Is(err, report.ErrHeaderNotFound):
		return "header_not_found"
	case errors.Is(err, report.ErrCoversColumnNotFound):
		return "covers_column_not_found"
	case errors.Is(err, report.ErrRevenueColumnNotFound):
		return "revenue_column_not_found"
	default:
		return "unreadable"
	}
}
