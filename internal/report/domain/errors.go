package report

import "errors"

var (
	// ErrDateNotFound is returned when no cell in the search window parses as a report date.
	ErrDateNotFound = errors.New("report: date not found")
	// ErrHeaderNotFound is returned when no row carries a covers header cell.
	ErrHeaderNotFound = errors.New("report: header row not found")
	// ErrCoversColumnNotFound is returned when the header row has no covers column.
	ErrCoversColumnNotFound = errors.New("report: covers column not found")
	// ErrRevenueColumnNotFound is returned when no revenue column candidate remains.
	ErrRevenueColumnNotFound = errors.New("report: revenue column not found")
	// ErrNegativeValue is returned when covers or revenue are negative.
	ErrNegativeValue = errors.New("report: negative value")
	// ErrInvalidDate is returned when a row or summary date is zero.
	ErrInvalidDate = errors.New("report: invalid date")
	// ErrUnclassifiedCenter is returned when a leaf row has no classified center.
	ErrUnclassifiedCenter = errors.New("report: unclassified revenue center")
	// ErrInvalidService is returned for service periods other than midday or evening.
	ErrInvalidService = errors.New("report: invalid service period")
)
