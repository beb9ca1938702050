package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	history "github.com/Chrisvtg92/the-hive-dashboard/internal/history/domain"
	reconciliation "github.com/Chrisvtg92/the-hive-dashboard/internal/reconciliation/domain"
	report "github.com/Chrisvtg92/the-hive-dashboard/internal/report/domain"
)

// BuildReportXLSX renders the reporting workbook: one sheet per
// logical table (daily summary, monthly reconciliation, history).
// Nil or empty inputs simply leave their sheet with headers only.
func BuildReportXLSX(daily *report.DailySummary, monthly []reconciliation.MonthlyRecord, entries []history.Entry) ([]byte, error) {
	f := excelize.NewFile()
	dailySheet := "daily"
	monthlySheet := "monthly"
	historySheet := "history"
	f.SetSheetName("Sheet1", dailySheet)
	f.NewSheet(monthlySheet)
	f.NewSheet(historySheet)

	writeDailySheet(f, dailySheet, daily)
	writeMonthlySheet(f, monthlySheet, monthly)
	writeHistorySheet(f, historySheet, entries)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeDailySheet(f *excelize.File, sheet string, daily *report.DailySummary) {
	_ = f.SetCellValue(sheet, "A1", "Daily Summary")
	if daily == nil {
		return
	}
	_ = f.SetCellValue(sheet, "A2", "Date")
	_ = f.SetCellValue(sheet, "B2", daily.Date().Format("2006-01-02"))

	headers := []string{"Category", "Service", "Covers", "Revenue"}
	for c, header := range headers {
		_ = f.SetCellValue(sheet, cellName(c, 3), header)
	}
	row := 4
	for _, category := range []report.Category{report.CategoryFood, report.CategoryBeverage} {
		for _, service := range []report.ServicePeriod{report.ServiceMidday, report.ServiceEvening} {
			cell := daily.Cell(category, service)
			_ = f.SetCellValue(sheet, cellName(0, row), string(category))
			_ = f.SetCellValue(sheet, cellName(1, row), string(service))
			_ = f.SetCellValue(sheet, cellName(2, row), cell.Covers)
			_ = f.SetCellValue(sheet, cellName(3, row), cell.Revenue)
			row++
		}
	}

	_ = f.SetCellValue(sheet, cellName(0, row+1), "Total Revenue")
	_ = f.SetCellValue(sheet, cellName(1, row+1), daily.TotalRevenue())
	_ = f.SetCellValue(sheet, cellName(0, row+2), "Total Covers")
	_ = f.SetCellValue(sheet, cellName(1, row+2), daily.TotalCovers())
	_ = f.SetCellValue(sheet, cellName(0, row+3), "Average Ticket Midday")
	_ = f.SetCellValue(sheet, cellName(1, row+3), daily.AverageTicketMidday())
	_ = f.SetCellValue(sheet, cellName(0, row+4), "Average Ticket Evening")
	_ = f.SetCellValue(sheet, cellName(1, row+4), daily.AverageTicketEvening())
}

var monthlyHeaders = []string{
	"Month",
	"Budget Food", "Budget Beverage", "Budget Total", "Budget Covers",
	"Prior-Year Food", "Prior-Year Beverage", "Prior-Year Total",
	"Realized Food", "Realized Beverage", "Realized Total",
	"Variance vs Budget", "Variance vs N-1", "Attainment %",
}

func writeMonthlySheet(f *excelize.File, sheet string, records []reconciliation.MonthlyRecord) {
	for c, header := range monthlyHeaders {
		_ = f.SetCellValue(sheet, cellName(c, 1), header)
	}
	for i, rec := range records {
		row := i + 2
		values := []any{
			string(rec.Month),
			rec.BudgetFood, rec.BudgetBeverage, rec.BudgetTotal, rec.BudgetCovers,
			rec.PriorYearFood, rec.PriorYearBeverage, rec.PriorYearTotal,
			rec.RealizedFood, rec.RealizedBeverage, rec.RealizedTotal,
			rec.VarianceVsBudget, rec.VarianceVsPriorYear, rec.AttainmentPct,
		}
		for c, value := range values {
			_ = f.SetCellValue(sheet, cellName(c, row), value)
		}
	}
}

var historyHeaders = []string{
	"Date",
	"Food Midday Covers", "Food Midday Revenue",
	"Food Evening Covers", "Food Evening Revenue",
	"Beverage Midday Covers", "Beverage Midday Revenue",
	"Beverage Evening Covers", "Beverage Evening Revenue",
	"Total Covers", "Total Revenue",
}

func writeHistorySheet(f *excelize.File, sheet string, entries []history.Entry) {
	for c, header := range historyHeaders {
		_ = f.SetCellValue(sheet, cellName(c, 1), header)
	}
	for i, entry := range entries {
		row := i + 2
		values := []any{
			entry.Date.Format("2006-01-02"),
			entry.FoodMiddayCovers, entry.FoodMiddayRevenue,
			entry.FoodEveningCovers, entry.FoodEveningRevenue,
			entry.BeverageMiddayCovers, entry.BeverageMiddayRevenue,
			entry.BeverageEveningCovers, entry.BeverageEveningRevenue,
			entry.TotalCovers, entry.TotalRevenue,
		}
		for c, value := range values {
			_ = f.SetCellValue(sheet, cellName(c, row), value)
		}
	}
}

func cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return fmt.Sprintf("A%d", row)
	}
	return name
}
