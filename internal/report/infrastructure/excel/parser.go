package excel

import (
	"fmt"

	report "github.com/Chrisvtg92/the-hive-dashboard/internal/report/domain"
)

// DailyParser turns one RestoTrack daily export into the canonical
// per-day summary. Stateless; each Parse reads the payload once.
type DailyParser struct {
	locator *Locator
}

// NewDailyParser builds a parser around a configured locator.
func NewDailyParser(locator *Locator) (*DailyParser, error) {
	if locator == nil {
		return nil, fmt.Errorf("daily parser: nil locator")
	}
	return &DailyParser{locator: locator}, nil
}

// ParseResult carries the canonical summary plus the extracted detail
// rows and data-quality counters for diagnostics.
type ParseResult struct {
	Summary      *report.DailySummary
	Rows         []report.RevenueRow
	InvalidCells int
	DroppedRows  int
}

// Parse locates, extracts and aggregates a daily export. Structural
// failures surface the report sentinel errors wrapped with context.
func (p *DailyParser) Parse(data []byte) (*ParseResult, error) {
	grid, err := OpenGrid(data)
	if err != nil {
		return nil, err
	}

	layout, err := p.locator.Locate(grid)
	if err != nil {
		return nil, err
	}

	extraction := Extract(grid, layout)
	summary, err := report.Aggregate(layout.ReportDate, extraction.Rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate day %s: %w", layout.ReportDate.Format("2006-01-02"), err)
	}

	return &ParseResult{
		Summary:      summary,
		Rows:         extraction.Rows,
		InvalidCells: extraction.InvalidCells,
		DroppedRows:  extraction.DroppedRows,
	}, nil
}

// ParseSummary is Parse reduced to the canonical summary, for callers
// that do not need detail rows or diagnostics.
func (p *DailyParser) ParseSummary(data []byte) (*report.DailySummary, error) {
	result, err := p.Parse(data)
	if err != nil {
		return nil, err
	}
	return result.Summary, nil
}
