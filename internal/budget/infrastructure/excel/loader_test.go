package excel

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	budget "github.com/Chrisvtg92/the-hive-dashboard/internal/budget/domain"
)

func buildWorkbook(t *testing.T, rows [][]string) []byte {
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

func budgetHeader() []string {
	return []string{"MOIS", "CA Restaurant", "CA Bar", "CA Boutique", "CA Total", "Couverts budgétés"}
}

func TestLoadBudget(t *testing.T) {
	rows := [][]string{
		budgetHeader(),
		{"Janvier", "80.000,00", "20.000,00", "5.000,00", "105.000,00", "2400"},
		{"Février", "75 000,00", "18 000,00", "4 000,00", "97 000,00", "2200"},
	}
	lines, err := NewLoader().Load(buildWorkbook(t, rows))
	if err != nil {
		t.Fatalf("load budget: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	jan := lines[0]
	if jan.Month != budget.MonthKey("01") {
		t.Fatalf("month key = %s", jan.Month)
	}
	// Boutique folds into Food.
	if jan.Food != 85000 {
		t.Fatalf("food budget = %v, want 85000", jan.Food)
	}
	if jan.Beverage != 20000 {
		t.Fatalf("beverage budget = %v", jan.Beverage)
	}
	if jan.Total != 105000 {
		t.Fatalf("total budget = %v", jan.Total)
	}
	if jan.Covers != 2400 {
		t.Fatalf("covers = %d", jan.Covers)
	}

	if lines[1].Month != budget.MonthKey("02") {
		t.Fatalf("second month key = %s", lines[1].Month)
	}
}

func TestLoadBudgetNumericMonths(t *testing.T) {
	rows := [][]string{
		budgetHeader(),
		{"1", "100", "50", "10", "160", "30"},
		{"12", "200", "80", "20", "300", "60"},
	}
	lines, err := NewLoader().Load(buildWorkbook(t, rows))
	if err != nil {
		t.Fatalf("load budget: %v", err)
	}
	if lines[0].Month != budget.MonthKey("01") || lines[1].Month != budget.MonthKey("12") {
		t.Fatalf("month keys = %s, %s", lines[0].Month, lines[1].Month)
	}
}

func TestLoadBudgetMissingColumn(t *testing.T) {
	rows := [][]string{
		{"MOIS", "CA Restaurant", "CA Bar", "CA Total", "Couverts"},
		{"Janvier", "100", "50", "150", "30"},
	}
	_, err := NewLoader().Load(buildWorkbook(t, rows))
	if err == nil {
		t.Fatal("expected schema error")
	}
	var schemaErr *budget.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if schemaErr.Column != "boutique revenue" {
		t.Fatalf("missing column = %q", schemaErr.Column)
	}
}

func TestLoadBudgetSkipsBlankAndFooterRows(t *testing.T) {
	rows := [][]string{
		budgetHeader(),
		{"Janvier", "100", "50", "10", "160", "30"},
		{},
		{"TOTAL ANNUEL", "100", "50", "10", "160", "30"},
	}
	lines, err := NewLoader().Load(buildWorkbook(t, rows))
	if err != nil {
		t.Fatalf("load budget: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected footer row skipped, got %d lines", len(lines))
	}
}
