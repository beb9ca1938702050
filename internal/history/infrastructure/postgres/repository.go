package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	history "github.com/Chrisvtg92/the-hive-dashboard/internal/history/domain"
)

// Repository persists the day log in the revenue_history table.
// The unique key on report_date serializes concurrent writers and
// makes reimports idempotent.
type Repository struct {
	db *sql.DB
}

// NewRepository constructs a repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or replaces the entry for its date.
func (r *Repository) Upsert(ctx context.Context, entry history.Entry) error {
	if r == nil || r.db == nil {
		return errors.New("history repo: nil db")
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO revenue_history (
	report_date,
	food_midday_covers, food_midday_revenue,
	food_evening_covers, food_evening_revenue,
	beverage_midday_covers, beverage_midday_revenue,
	beverage_evening_covers, beverage_evening_revenue,
	total_covers, total_revenue,
	average_ticket_midday, average_ticket_evening,
	updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
ON CONFLICT (report_date) DO UPDATE SET
	food_midday_covers = EXCLUDED.food_midday_covers,
	food_midday_revenue = EXCLUDED.food_midday_revenue,
	food_evening_covers = EXCLUDED.food_evening_covers,
	food_evening_revenue = EXCLUDED.food_evening_revenue,
	beverage_midday_covers = EXCLUDED.beverage_midday_covers,
	beverage_midday_revenue = EXCLUDED.beverage_midday_revenue,
	beverage_evening_covers = EXCLUDED.beverage_evening_covers,
	beverage_evening_revenue = EXCLUDED.beverage_evening_revenue,
	total_covers = EXCLUDED.total_covers,
	total_revenue = EXCLUDED.total_revenue,
	average_ticket_midday = EXCLUDED.average_ticket_midday,
	average_ticket_evening = EXCLUDED.average_ticket_evening,
	updated_at = EXCLUDED.updated_at`,
		entry.Date,
		entry.FoodMiddayCovers, entry.FoodMiddayRevenue,
		entry.FoodEveningCovers, entry.FoodEveningRevenue,
		entry.BeverageMiddayCovers, entry.BeverageMiddayRevenue,
		entry.BeverageEveningCovers, entry.BeverageEveningRevenue,
		entry.TotalCovers, entry.TotalRevenue,
		entry.AverageTicketMidday, entry.AverageTicketEvening,
		time.Now().UTC(),
	)
	return err
}

// List returns entries within [from, to] ordered by date. Zero bounds
// widen to the whole log.
func (r *Repository) List(ctx context.Context, from, to time.Time) ([]history.Entry, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("history repo: nil db")
	}
	if from.IsZero() {
		from = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	if to.IsZero() {
		to = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT report_date,
	food_midday_covers, food_midday_revenue,
	food_evening_covers, food_evening_revenue,
	beverage_midday_covers, beverage_midday_revenue,
	beverage_evening_covers, beverage_evening_revenue,
	total_covers, total_revenue,
	average_ticket_midday, average_ticket_evening
FROM revenue_history
WHERE report_date >= $1 AND report_date <= $2
ORDER BY report_date`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []history.Entry
	for rows.Next() {
		var entry history.Entry
		if err := rows.Scan(
			&entry.Date,
			&entry.FoodMiddayCovers, &entry.FoodMiddayRevenue,
			&entry.FoodEveningCovers, &entry.FoodEveningRevenue,
			&entry.BeverageMiddayCovers, &entry.BeverageMiddayRevenue,
			&entry.BeverageEveningCovers, &entry.BeverageEveningRevenue,
			&entry.TotalCovers, &entry.TotalRevenue,
			&entry.AverageTicketMidday, &entry.AverageTicketEvening,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
