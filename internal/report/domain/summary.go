package report

import "time"

// CellKey addresses one of the four (category, service) summary cells.
type CellKey struct {
	Category Category
	Service  ServicePeriod
}

// CellTotals holds the aggregated covers and revenue of one cell.
type CellTotals struct {
	Covers  int
	Revenue float64
}

// DailySummary is the canonical per-day record: RevenueRow entries of
// one date grouped by (category, service). Created once per uploaded
// file and never mutated afterwards.
type DailySummary struct {
	date  time.Time
	cells map[CellKey]CellTotals
}

// Aggregate groups rows by (category, service), summing covers and
// revenue. Grouping is commutative, so the result is independent of
// input order.
func Aggregate(date time.Time, rows []RevenueRow) (*DailySummary, error) {
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	cells := make(map[CellKey]CellTotals, 4)
	for _, row := range rows {
		key := CellKey{Category: row.Category(), Service: row.Service()}
		cell := cells[key]
		cell.Covers += row.Covers()
		cell.Revenue += row.Revenue()
		cells[key] = cell
	}
	return &DailySummary{date: date, cells: cells}, nil
}

// Date returns the report date.
func (s *DailySummary) Date() time.Time { return s.date }

// Cell returns the totals for one (category, service) cell; absent
// cells are zero.
func (s *DailySummary) Cell(category Category, service ServicePeriod) CellTotals {
	return s.cells[CellKey{Category: category, Service: service}]
}

// TotalRevenue sums revenue across all cells.
func (s *DailySummary) TotalRevenue() float64 {
	total := 0.0
	for _, cell := range s.cells {
		total += cell.Revenue
	}
	return total
}

// TotalCovers sums covers across all cells.
func (s *DailySummary) TotalCovers() int {
	total := 0
	for _, cell := range s.cells {
		total += cell.Covers
	}
	return total
}

// ServiceTotals sums both categories of one service period.
func (s *DailySummary) ServiceTotals(service ServicePeriod) CellTotals {
	food := s.Cell(CategoryFood, service)
	beverage := s.Cell(CategoryBeverage, service)
	return CellTotals{
		Covers:  food.Covers + beverage.Covers,
		Revenue: food.Revenue + beverage.Revenue,
	}
}

// CategoryRevenue sums both service periods of one category.
func (s *DailySummary) CategoryRevenue(category Category) float64 {
	return s.Cell(category, ServiceMidday).Revenue + s.Cell(category, ServiceEvening).Revenue
}

// AverageTicketMidday is midday revenue per cover, zero when no covers.
func (s *DailySummary) AverageTicketMidday() float64 {
	return averageTicket(s.ServiceTotals(ServiceMidday))
}

// AverageTicketEvening is evening revenue per cover, zero when no covers.
func (s *DailySummary) AverageTicketEvening() float64 {
	return averageTicket(s.ServiceTotals(ServiceEvening))
}

func averageTicket(totals CellTotals) float64 {
	if totals.Covers == 0 {
		return 0
	}
	return totals.Revenue / float64(totals.Covers)
}
