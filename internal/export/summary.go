package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	report "github.com/Chrisvtg92/the-hive-dashboard/internal/report/domain"
)

// BuildDailySummaryPDF renders the short fixed-layout day summary the
// venue prints for the morning briefing.
func BuildDailySummaryPDF(summary *report.DailySummary) ([]byte, error) {
	if summary == nil {
		return nil, errors.New("export: nil summary")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "The Hive - Daily Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", summary.Date().Format("2006-01-02")))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(45, 6, "Category", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 6, "Service", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Covers", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Revenue (EUR)", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, category := range []report.Category{report.CategoryFood, report.CategoryBeverage} {
		for _, service := range []report.ServicePeriod{report.ServiceMidday, report.ServiceEvening} {
			cell := summary.Cell(category, service)
			pdf.CellFormat(45, 6, string(category), "1", 0, "L", false, 0, "")
			pdf.CellFormat(45, 6, string(service), "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, fmt.Sprintf("%d", cell.Covers), "1", 0, "R", false, 0, "")
			pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", cell.Revenue), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
	}

	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Total Revenue: %.2f EUR", summary.TotalRevenue()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Covers: %d", summary.TotalCovers()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Average Ticket Midday: %.2f EUR", summary.AverageTicketMidday()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Average Ticket Evening: %.2f EUR", summary.AverageTicketEvening()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
