package reconciliation

import (
	budget "github.com/Chrisvtg92/the-hive-dashboard/internal/budget/domain"
)

// Totals is a food/beverage revenue pair with its sum.
type Totals struct {
	Food     float64 `json:"food"`
	Beverage float64 `json:"beverage"`
	Total    float64 `json:"total"`
}

// Add folds another totals value in; sums are commutative so merge
// order never matters.
func (t Totals) Add(other Totals) Totals {
	return Totals{
		Food:     t.Food + other.Food,
		Beverage: t.Beverage + other.Beverage,
		Total:    t.Total + other.Total,
	}
}

// MonthlyRecord is one calendar month's reconciled figures. It is a
// view artifact: recomputed on every reconciliation call, never
// persisted.
type MonthlyRecord struct {
	Month budget.MonthKey `json:"month"`

	BudgetFood     float64 `json:"budget_food"`
	BudgetBeverage float64 `json:"budget_beverage"`
	BudgetTotal    float64 `json:"budget_total"`
	BudgetCovers   int     `json:"budget_covers"`

	PriorYearFood     float64 `json:"prior_year_food"`
	PriorYearBeverage float64 `json:"prior_year_beverage"`
	PriorYearTotal    float64 `json:"prior_year_total"`

	RealizedFood     float64 `json:"realized_food"`
	RealizedBeverage float64 `json:"realized_beverage"`
	RealizedTotal    float64 `json:"realized_total"`

	VarianceVsBudget    float64 `json:"variance_vs_budget"`
	VarianceVsPriorYear float64 `json:"variance_vs_prior_year"`
	AttainmentPct       float64 `json:"attainment_pct"`
}

// Derive fills the computed fields from the source figures.
// Attainment is zero when there is no budget to attain.
func (r *MonthlyRecord) Derive() {
	r.VarianceVsBudget = r.RealizedTotal - r.BudgetTotal
	r.VarianceVsPriorYear = r.RealizedTotal - r.PriorYearTotal
	if r.BudgetTotal == 0 {
		r.AttainmentPct = 0
		return
	}
	r.AttainmentPct = r.RealizedTotal / r.BudgetTotal * 100
}
