package history

import (
	"errors"
	"time"

	report "github.com/Chrisvtg92/the-hive-dashboard/internal/report/domain"
)

// ErrNilSummary is returned when flattening a nil daily summary.
var ErrNilSummary = errors.New("history: nil summary")

// Entry is one parsed day flattened for the durable log, keyed by
// date. Column set mirrors the venue's historic export so trend
// queries stay stable across reimports.
type Entry struct {
	Date time.Time `json:"date"`

	FoodMiddayCovers       int     `json:"food_midday_covers"`
	FoodMiddayRevenue      float64 `json:"food_midday_revenue"`
	FoodEveningCovers      int     `json:"food_evening_covers"`
	FoodEveningRevenue     float64 `json:"food_evening_revenue"`
	BeverageMiddayCovers   int     `json:"beverage_midday_covers"`
	BeverageMiddayRevenue  float64 `json:"beverage_midday_revenue"`
	BeverageEveningCovers  int     `json:"beverage_evening_covers"`
	BeverageEveningRevenue float64 `json:"beverage_evening_revenue"`

	TotalCovers  int     `json:"total_covers"`
	TotalRevenue float64 `json:"total_revenue"`

	AverageTicketMidday  float64 `json:"average_ticket_midday"`
	AverageTicketEvening float64 `json:"average_ticket_evening"`
}

// NewEntry flattens a daily summary.
func NewEntry(summary *report.DailySummary) (Entry, error) {
	if summary == nil {
		return Entry{}, ErrNilSummary
	}
	foodMidday := summary.Cell(report.CategoryFood, report.ServiceMidday)
	foodEvening := summary.Cell(report.CategoryFood, report.ServiceEvening)
	beverageMidday := summary.Cell(report.CategoryBeverage, report.ServiceMidday)
	beverageEvening := summary.Cell(report.CategoryBeverage, report.ServiceEvening)

	return Entry{
		Date:                   summary.Date(),
		FoodMiddayCovers:       foodMidday.Covers,
		FoodMiddayRevenue:      foodMidday.Revenue,
		FoodEveningCovers:      foodEvening.Covers,
		FoodEveningRevenue:     foodEvening.Revenue,
		BeverageMiddayCovers:   beverageMidday.Covers,
		BeverageMiddayRevenue:  beverageMidday.Revenue,
		BeverageEveningCovers:  beverageEvening.Covers,
		BeverageEveningRevenue: beverageEvening.Revenue,
		TotalCovers:            summary.TotalCovers(),
		TotalRevenue:           summary.TotalRevenue(),
		AverageTicketMidday:    summary.AverageTicketMidday(),
		AverageTicketEvening:   summary.AverageTicketEvening(),
	}, nil
}
