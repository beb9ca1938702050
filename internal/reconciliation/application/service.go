package application

import (
	"errors"
	"sort"

	budget "github.com/Chrisvtg92/the-hive-dashboard/internal/budget/domain"
	reconciliation "github.com/Chrisvtg92/the-hive-dashboard/internal/reconciliation/domain"
	report "github.com/Chrisvtg92/the-hive-dashboard/internal/report/domain"
)

// Service joins realized, budget and prior-year figures on the month
// key and computes the derived variance and attainment fields.
type Service struct{}

// NewService constructs the reconciliation engine.
func NewService() *Service { return &Service{} }

// Reconcile performs the month-keyed outer join. The budget is the
// anchor: a month absent from the budget is never reported, because
// attainment has no denominator there. Missing realized or prior-year
// figures default to zero so the arithmetic never fails.
func (s *Service) Reconcile(
	dailySummaries []*report.DailySummary,
	budgetLines []budget.Line,
	priorYear map[budget.MonthKey]reconciliation.Totals,
) ([]reconciliation.MonthlyRecord, error) {
	if len(budgetLines) == 0 {
		return nil, errors.New("reconciliation: no budget lines")
	}

	realized := foldRealized(dailySummaries)

	records := make([]reconciliation.MonthlyRecord, 0, len(budgetLines))
	for _, line := range budgetLines {
		record := reconciliation.MonthlyRecord{
			Month:          line.Month,
			BudgetFood:     line.Food,
			BudgetBeverage: line.Beverage,
			BudgetTotal:    line.Total,
			BudgetCovers:   line.Covers,
		}
		if prior, ok := priorYear[line.Month]; ok {
			record.PriorYearFood = prior.Food
			record.PriorYearBeverage = prior.Beverage
			record.PriorYearTotal = prior.Total
		}
		if got, ok := realized[line.Month]; ok {
			record.RealizedFood = got.Food
			record.RealizedBeverage = got.Beverage
			record.RealizedTotal = got.Total
		}
		record.Derive()
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Month < records[j].Month })
	return records, nil
}

// foldRealized sums daily summaries into per-month totals.
func foldRealized(summaries []*report.DailySummary) map[budget.MonthKey]reconciliation.Totals {
	realized := make(map[budget.MonthKey]reconciliation.Totals)
	for _, summary := range summaries {
		key, err := budget.NewMonthKey(int(summary.Date().Month()))
		if err != nil {
			continue
		}
		realized[key] = realized[key].Add(summaryTotals(summary))
	}
	return realized
}
