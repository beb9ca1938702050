package report

import "time"

// RevenueCenter is a named sales department discovered at a heading
// row. Its category is resolved once from the heading label and
// inherited by every leaf row parsed underneath it.
type RevenueCenter struct {
	Label    string
	Category Category
}

// NewRevenueCenter classifies a heading label into a revenue center.
func NewRevenueCenter(label string) RevenueCenter {
	return RevenueCenter{Label: label, Category: ClassifyCategory(label)}
}

// Classified reports whether the center can attribute revenue.
func (c RevenueCenter) Classified() bool {
	return c.Category == CategoryFood || c.Category == CategoryBeverage
}

// RevenueRow is one (revenue-center, service-period) observation
// extracted from a daily sheet. Immutable once created.
type RevenueRow struct {
	date     time.Time
	center   string
	category Category
	service  ServicePeriod
	covers   int
	revenue  float64
}

// NewRevenueRow validates and builds an observation. Morning has
// already been folded by the extractor, so only Midday and Evening are
// accepted.
func NewRevenueRow(date time.Time, center RevenueCenter, service ServicePeriod, covers int, revenue float64) (RevenueRow, error) {
	if date.IsZero() {
		return RevenueRow{}, ErrInvalidDate
	}
	if !center.Classified() {
		return RevenueRow{}, ErrUnclassifiedCenter
	}
	if service != ServiceMidday && service != ServiceEvening {
		return RevenueRow{}, ErrInvalidService
	}
	if covers < 0 || revenue < 0 {
		return RevenueRow{}, ErrNegativeValue
	}
	return RevenueRow{
		date:     date,
		center:   center.Label,
		category: center.Category,
		service:  service,
		covers:   covers,
		revenue:  revenue,
	}, nil
}

// Date returns the report date.
func (r RevenueRow) Date() time.Time { return r.date }

// Center returns the originating center label, carried for audit and
// display only.
func (r RevenueRow) Center() string { return r.center }

// Category returns the inherited center category.
func (r RevenueRow) Category() Category { return r.category }

// Service returns the folded service period.
func (r RevenueRow) Service() ServicePeriod { return r.service }

// Covers returns the guest count.
func (r RevenueRow) Covers() int { return r.covers }

// Revenue returns the tax-inclusive amount.
func (r RevenueRow) Revenue() float64 { return r.revenue }
