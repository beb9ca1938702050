package excel

import (
	"strconv"
	"strings"

	budget "github.com/Chrisvtg92/the-hive-dashboard/internal/budget/domain"
	reportdomain "github.com/Chrisvtg92/the-hive-dashboard/internal/report/domain"
	sheet "github.com/Chrisvtg92/the-hive-dashboard/internal/report/infrastructure/excel"
)

// requiredColumn pairs a stable column name with the ordered keyword
// predicates that locate it in the header row. First match wins.
type requiredColumn struct {
	name     string
	keywords []string
}

// The budget workbook has a fixed schema: one header row, one row per
// month. Columns move between yearly templates, so they are matched by
// accent-insensitive substring.
var requiredColumns = []requiredColumn{
	{name: "month", keywords: []string{"mois", "month"}},
	{name: "restaurant revenue", keywords: []string{"restaurant", "nourriture"}},
	{name: "bar revenue", keywords: []string{"bar", "boisson"}},
	{name: "boutique revenue", keywords: []string{"boutique"}},
	{name: "grand total", keywords: []string{"total"}},
	{name: "covers", keywords: []string{"couvert", "covers"}},
}

// Loader parses annual budget workbooks.
type Loader struct{}

// NewLoader constructs a budget loader.
func NewLoader() *Loader { return &Loader{} }

// Load parses the fixed-schema budget sheet into one line per month.
// A missing required column fails with a SchemaError naming it.
func (l *Loader) Load(data []byte) ([]budget.Line, error) {
	grid, err := sheet.OpenGrid(data)
	if err != nil {
		return nil, err
	}
	if len(grid) < 2 {
		return nil, budget.ErrEmptySheet
	}

	columns, err := resolveColumns(grid[0])
	if err != nil {
		return nil, err
	}

	lines := make([]budget.Line, 0, 12)
	for _, row := range grid[1:] {
		monthCell := sheet.CellAt(row, columns["month"])
		if monthCell == "" {
			continue
		}
		month, ok := parseMonth(monthCell)
		if !ok {
			continue
		}
		key, err := budget.NewMonthKey(month)
		if err != nil {
			continue
		}

		restaurant := amountAt(row, columns["restaurant revenue"])
		bar := amountAt(row, columns["bar revenue"])
		boutique := amountAt(row, columns["boutique revenue"])
		total := amountAt(row, columns["grand total"])
		covers := amountAt(row, columns["covers"])

		lines = append(lines, budget.Line{
			Month: key,
			// Boutique is budgeted into Food, never Beverage.
			Food:     restaurant + boutique,
			Beverage: bar,
			Total:    total,
			Covers:   int(covers),
		})
	}
	if len(lines) == 0 {
		return nil, budget.ErrEmptySheet
	}
	return lines, nil
}

// resolveColumns locates every required column in fixed priority
// order. Columns already claimed are skipped so "total" never steals
// the restaurant or bar revenue columns.
func resolveColumns(header []string) (map[string]int, error) {
	folded := make([]string, len(header))
	for i := range header {
		folded[i] = sheet.FoldCell(header[i])
	}

	claimed := make(map[int]bool, len(requiredColumns))
	columns := make(map[string]int, len(requiredColumns))
	for _, required := range requiredColumns {
		idx := -1
		for c := range folded {
			if claimed[c] {
				continue
			}
			if containsAnyKeyword(folded[c], required.keywords) {
				idx = c
				break
			}
		}
		if idx < 0 {
			return nil, &budget.SchemaError{Column: required.name}
		}
		claimed[idx] = true
		columns[required.name] = idx
	}
	return columns, nil
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func amountAt(row []string, col int) float64 {
	return reportdomain.NormalizeAmount(sheet.CellAt(row, col)).Value
}

var monthNames = map[string]int{
	"janvier": 1, "january": 1,
	"fevrier": 2, "february": 2,
	"mars": 3, "march": 3,
	"avril": 4, "april": 4,
	"mai": 5, "may": 5,
	"juin": 6, "june": 6,
	"juillet": 7, "july": 7,
	"aout": 8, "august": 8,
	"septembre": 9, "september": 9,
	"octobre": 10, "october": 10,
	"novembre": 11, "november": 11,
	"decembre": 12, "december": 12,
}

// parseMonth accepts numerals ("1", "01") and French or English month
// names, matching the yearly template drift.
func parseMonth(cell string) (int, bool) {
	folded := sheet.FoldCell(cell)
	if n, err := strconv.Atoi(folded); err == nil {
		return n, n >= 1 && n <= 12
	}
	for name, n := range monthNames {
		if strings.HasPrefix(folded, name) {
			return n, true
		}
	}
	return 0, false
}
