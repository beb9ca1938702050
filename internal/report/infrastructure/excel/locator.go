package excel

import (
	"strings"
	"time"

	report "github.com/Chrisvtg92/the-hive-dashboard/internal/report/domain"
)

// Layout is the structural anchor of a daily export: the report date,
// the header row, and the resolved covers/revenue columns.
type Layout struct {
	ReportDate time.Time
	HeaderRow  int
	CoversCol  int
	RevenueCol int
}

// Locator finds the layout anchors inside an unstructured RestoTrack
// grid. The export shifts cells between releases, so everything is
// located by keyword rather than fixed coordinates.
type Locator struct {
	dateSearchRows int
	dateSearchCols int
}

// NewLocator builds a locator with a bounded date-search window.
func NewLocator(dateSearchRows, dateSearchCols int) *Locator {
	if dateSearchRows <= 0 {
		dateSearchRows = defaultDateSearchRows
	}
	if dateSearchCols <= 0 {
		dateSearchCols = defaultDateSearchCols
	}
	return &Locator{dateSearchRows: dateSearchRows, dateSearchCols: dateSearchCols}
}

const (
	defaultDateSearchRows = 10
	defaultDateSearchCols = 8

	minPlausibleYear = 2000
	maxPlausibleYear = 2100
)

// Day-first layouts first: RestoTrack exports are French.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2.1.2006",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
}

// Locate resolves the report date, header row and column indices, or
// returns one of the report sentinel errors.
func (l *Locator) Locate(grid Grid) (Layout, error) {
	date, ok := l.findReportDate(grid)
	if !ok {
		return Layout{}, report.ErrDateNotFound
	}

	headerRow, ok := findHeaderRow(grid)
	if !ok {
		return Layout{}, report.ErrHeaderNotFound
	}

	coversCol, ok := findCoversColumn(grid[headerRow])
	if !ok {
		return Layout{}, report.ErrCoversColumnNotFound
	}

	revenueCol, ok := findRevenueColumn(grid[headerRow])
	if !ok {
		return Layout{}, report.ErrRevenueColumnNotFound
	}

	return Layout{
		ReportDate: date,
		HeaderRow:  headerRow,
		CoversCol:  coversCol,
		RevenueCol: revenueCol,
	}, nil
}

// findReportDate scans the bounded window for the first cell that
// parses to a plausible calendar date. Year bounds reject spreadsheet
// serial numbers misread as years.
func (l *Locator) findReportDate(grid Grid) (time.Time, bool) {
	for r := 0; r < l.dateSearchRows && r < len(grid); r++ {
		for c := 0; c < l.dateSearchCols; c++ {
			raw := CellAt(grid[r], c)
			if raw == "" {
				continue
			}
			for _, layout := range dateLayouts {
				parsed, err := time.Parse(layout, raw)
				if err != nil {
					continue
				}
				if parsed.Year() < minPlausibleYear || parsed.Year() > maxPlausibleYear {
					continue
				}
				return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), true
			}
		}
	}
	return time.Time{}, false
}

var coversKeywords = []string{"couvert", "covers"}

// findHeaderRow returns the first row carrying a covers header cell,
// falling back to the first row with a revenue header when no covers
// cell exists anywhere. Column resolution happens separately so a
// header row missing one of the two columns reports which one.
func findHeaderRow(grid Grid) (int, bool) {
	for r := range grid {
		if _, ok := findCoversColumn(grid[r]); ok {
			return r, true
		}
	}
	for r := range grid {
		if _, ok := findRevenueColumn(grid[r]); ok {
			return r, true
		}
	}
	return 0, false
}

// findCoversColumn locates the covers header cell in one row.
func findCoversColumn(header []string) (int, bool) {
	for c := range header {
		folded := FoldCell(header[c])
		for _, kw := range coversKeywords {
			if strings.Contains(folded, kw) {
				return c, true
			}
		}
	}
	return 0, false
}

// columnRule is one candidate predicate for revenue-column resolution.
// Rules are evaluated in declaration order so the heuristic stays
// inspectable and testable.
type columnRule struct {
	name  string
	match func(folded string) bool
}

var revenueColumnRules = []columnRule{
	{
		name: "tax-inclusive total",
		match: func(folded string) bool {
			return strings.Contains(folded, "ttc") && strings.Contains(folded, "total") && !strings.Contains(folded, "%")
		},
	},
	{
		name: "tax-inclusive",
		match: func(folded string) bool {
			return strings.Contains(folded, "ttc") && !strings.Contains(folded, "%")
		},
	},
	{
		name: "generic total",
		match: func(folded string) bool {
			return strings.Contains(folded, "total") && !strings.Contains(folded, "%")
		},
	},
}

// findRevenueColumn applies the ordered rules to the header row.
// Percent-marker headers (share-of-total columns) never match.
func findRevenueColumn(header []string) (int, bool) {
	for _, rule := range revenueColumnRules {
		for c := range header {
			if rule.match(FoldCell(header[c])) {
				return c, true
			}
		}
	}
	return 0, false
}
