package budget

import "fmt"

// MonthKey is the zero-padded "01".."12" join key shared by budget,
// realized and prior-year figures. Consistent padding is what makes
// the month join line up across all three sources.
type MonthKey string

// NewMonthKey validates and pads a month number.
func NewMonthKey(month int) (MonthKey, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("budget: month %d out of range: %w", month, ErrInvalidMonth)
	}
	return MonthKey(fmt.Sprintf("%02d", month)), nil
}

// Line is one calendar month of the annual budget. Food includes the
// boutique column: retail is budgeted as food, not beverage.
type Line struct {
	Month    MonthKey
	Food     float64
	Beverage float64
	Total    float64
	Covers   int
}
