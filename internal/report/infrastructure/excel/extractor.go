package excel

import (
	"strings"

	report "github.com/Chrisvtg92/the-hive-dashboard/internal/report/domain"
)

// Extraction is the outcome of one sheet walk.
type Extraction struct {
	Rows []report.RevenueRow
	// InvalidCells counts non-empty amount cells that failed to parse
	// and were normalized to zero. Completeness signal only; values
	// are final.
	InvalidCells int
	// DroppedRows counts leaf rows discarded for lack of a classified
	// revenue center.
	DroppedRows int
}

// Sentinel labels the export emits for orphan rows. They are skipped
// without resetting the current center.
var noCenterSentinels = []string{"aucun centre", "sans centre", "no center"}

// Extract walks the rows strictly below the header, tracking the most
// recently seen revenue-center heading. Labels without a service
// period are headings; labels with one are leaf observations that
// inherit the heading's category. Morning folds into Midday.
func Extract(grid Grid, layout Layout) Extraction {
	var out Extraction
	var center report.RevenueCenter
	haveCenter := false

	for r := layout.HeaderRow + 1; r < len(grid); r++ {
		label := CellAt(grid[r], 0)
		if label == "" {
			continue
		}
		if isNoCenterSentinel(label) {
			continue
		}

		service := report.ClassifyService(label)
		if service == report.ServiceUnclassified {
			center = report.NewRevenueCenter(label)
			haveCenter = true
			continue
		}

		if !haveCenter || !center.Classified() {
			out.DroppedRows++
			continue
		}
		if service == report.ServiceMorning {
			service = report.ServiceMidday
		}

		coversRaw := CellAt(grid[r], layout.CoversCol)
		revenueRaw := CellAt(grid[r], layout.RevenueCol)
		covers := report.NormalizeAmount(coversRaw)
		revenue := report.NormalizeAmount(revenueRaw)
		// Blank cells are ordinary (a center with no covers), not a
		// data-quality defect; only non-empty text that fails to parse
		// counts as invalid.
		if coversRaw != "" && !covers.Valid {
			out.InvalidCells++
		}
		if revenueRaw != "" && !revenue.Valid {
			out.InvalidCells++
		}

		row, err := report.NewRevenueRow(layout.ReportDate, center, service, clampCovers(covers.Value), clampAmount(revenue.Value))
		if err != nil {
			out.DroppedRows++
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func isNoCenterSentinel(label string) bool {
	folded := FoldCell(label)
	for _, sentinel := range noCenterSentinels {
		if strings.Contains(folded, sentinel) {
			return true
		}
	}
	return false
}

func clampCovers(value float64) int {
	if value < 0 {
		return 0
	}
	return int(value)
}

func clampAmount(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}
