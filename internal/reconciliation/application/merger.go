package application

import (
	"errors"
	"log"

	budget "github.com/Chrisvtg92/the-hive-dashboard/internal/budget/domain"
	"github.com/Chrisvtg92/the-hive-dashboard/internal/observability/metrics"
	reconciliation "github.com/Chrisvtg92/the-hive-dashboard/internal/reconciliation/domain"
	report "github.com/Chrisvtg92/the-hive-dashboard/internal/report/domain"
)

// DailyParser is the slice of the excel parser the merger needs: one
// payload in, one canonical day summary out.
type DailyParser interface {
	ParseSummary(data []byte) (*report.DailySummary, error)
}

// File is one named payload of a prior-year batch; the name travels
// into warnings so the operator knows which export failed.
type File struct {
	Name string
	Data []byte
}

// Warning records a file that was skipped during a batch merge.
type Warning struct {
	File string `json:"file"`
	Err  string `json:"error"`
}

// PriorYearMerger folds a batch of prior-year daily exports into one
// totals value per month. Each file parses independently; one corrupt
// file never aborts the rest.
type PriorYearMerger struct {
	parser DailyParser
	logger *log.Logger
}

// NewPriorYearMerger constructs a merger.
func NewPriorYearMerger(parser DailyParser, logger *log.Logger) (*PriorYearMerger, error) {
	if parser == nil {
		return nil, errors.New("prior-year merger: nil parser")
	}
	if logger == nil {
		return nil, errors.New("prior-year merger: nil logger")
	}
	return &PriorYearMerger{parser: parser, logger: logger}, nil
}

// Merge parses every file and sums per month. A month covered by
// several daily files accumulates; zero parsable files yields an empty
// map, not an error.
func (m *PriorYearMerger) Merge(files []File) (map[budget.MonthKey]reconciliation.Totals, []Warning) {
	totals := make(map[budget.MonthKey]reconciliation.Totals)
	var warnings []Warning

	for _, file := range files {
		summary, err := m.parser.ParseSummary(file.Data)
		if err != nil {
			m.logger.Printf("prior-year merge: skipping %s: %v", file.Name, err)
			warnings = append(warnings, Warning{File: file.Name, Err: err.Error()})
			metrics.AddPriorYearSkipped(1)
			continue
		}
		key, err := budget.NewMonthKey(int(summary.Date().Month()))
		if err != nil {
			warnings = append(warnings, Warning{File: file.Name, Err: err.Error()})
			continue
		}
		totals[key] = totals[key].Add(summaryTotals(summary))
	}
	return totals, warnings
}

func summaryTotals(summary *report.DailySummary) reconciliation.Totals {
	food := summary.CategoryRevenue(report.CategoryFood)
	beverage := summary.CategoryRevenue(report.CategoryBeverage)
	return reconciliation.Totals{Food: food, Beverage: beverage, Total: food + beverage}
}
