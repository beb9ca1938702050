package report

import (
	"math"
	"testing"
	"time"
)

var testDate = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func mustRow(t *testing.T, center string, service ServicePeriod, covers int, revenue float64) RevenueRow {
	t.Helper()
	row, err := NewRevenueRow(testDate, NewRevenueCenter(center), service, covers, revenue)
	if err != nil {
		t.Fatalf("new revenue row: %v", err)
	}
	return row
}

func TestNewRevenueRowValidation(t *testing.T) {
	if _, err := NewRevenueRow(time.Time{}, NewRevenueCenter("Restaurant"), ServiceMidday, 1, 1); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := NewRevenueRow(testDate, NewRevenueCenter("Vestiaire"), ServiceMidday, 1, 1); err != ErrUnclassifiedCenter {
		t.Fatalf("expected ErrUnclassifiedCenter, got %v", err)
	}
	if _, err := NewRevenueRow(testDate, NewRevenueCenter("Restaurant"), ServiceMorning, 1, 1); err != ErrInvalidService {
		t.Fatalf("expected ErrInvalidService for unfolded morning, got %v", err)
	}
	if _, err := NewRevenueRow(testDate, NewRevenueCenter("Restaurant"), ServiceMidday, -1, 1); err != ErrNegativeValue {
		t.Fatalf("expected ErrNegativeValue, got %v", err)
	}
}

func TestAggregateGroupsByCell(t *testing.T) {
	rows := []RevenueRow{
		mustRow(t, "Restaurant", ServiceMidday, 50, 1234.56),
		mustRow(t, "Restaurant", ServiceEvening, 30, 800),
		mustRow(t, "Cocktail Bar", ServiceEvening, 12, 450.5),
		mustRow(t, "Boutique", ServiceMidday, 0, 120),
	}
	summary, err := Aggregate(testDate, rows)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	foodMidday := summary.Cell(CategoryFood, ServiceMidday)
	if foodMidday.Covers != 50 || foodMidday.Revenue != 1354.56 {
		t.Fatalf("food midday = %+v", foodMidday)
	}
	if got := summary.Cell(CategoryBeverage, ServiceEvening); got.Covers != 12 || got.Revenue != 450.5 {
		t.Fatalf("beverage evening = %+v", got)
	}
	if summary.TotalCovers() != 92 {
		t.Fatalf("total covers = %d", summary.TotalCovers())
	}
	if math.Abs(summary.TotalRevenue()-2605.06) > 1e-9 {
		t.Fatalf("total revenue = %v", summary.TotalRevenue())
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	rows := []RevenueRow{
		mustRow(t, "Restaurant", ServiceMidday, 50, 1234.56),
		mustRow(t, "Restaurant", ServiceEvening, 30, 800),
		mustRow(t, "Bar", ServiceMidday, 8, 96),
		mustRow(t, "Bar", ServiceEvening, 20, 410),
	}
	permuted := []RevenueRow{rows[3], rows[1], rows[0], rows[2]}

	a, err := Aggregate(testDate, rows)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	b, err := Aggregate(testDate, permuted)
	if err != nil {
		t.Fatalf("aggregate permuted: %v", err)
	}

	for _, category := range []Category{CategoryFood, CategoryBeverage} {
		for _, service := range []ServicePeriod{ServiceMidday, ServiceEvening} {
			if a.Cell(category, service) != b.Cell(category, service) {
				t.Fatalf("cell (%s,%s) differs across permutations", category, service)
			}
		}
	}
}

func TestAverageTicketGuardsZeroCovers(t *testing.T) {
	summary, err := Aggregate(testDate, nil)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if summary.AverageTicketMidday() != 0 || summary.AverageTicketEvening() != 0 {
		t.Fatal("expected zero average tickets for empty day")
	}

	summary, err = Aggregate(testDate, []RevenueRow{
		mustRow(t, "Restaurant", ServiceMidday, 40, 1000),
		mustRow(t, "Bar", ServiceMidday, 10, 250),
	})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if got := summary.AverageTicketMidday(); got != 25 {
		t.Fatalf("average ticket midday = %v, want 25", got)
	}
}
