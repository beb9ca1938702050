package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	history "github.com/Chrisvtg92/the-hive-dashboard/internal/history/domain"
)

func TestUpsertReplacesSameDate(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	if err := repo.Upsert(ctx, history.Entry{Date: date, TotalRevenue: 100}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, history.Entry{Date: date, TotalRevenue: 250}); err != nil {
		t.Fatalf("upsert again: %v", err)
	}

	entries, err := repo.List(ctx, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry after reimport, got %d", len(entries))
	}
	if entries[0].TotalRevenue != 250 {
		t.Fatalf("expected replaced revenue, got %v", entries[0].TotalRevenue)
	}
}

func TestListRangeAndOrder(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	for day := 10; day <= 14; day++ {
		date := time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
		if err := repo.Upsert(ctx, history.Entry{Date: date, TotalCovers: day}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	from := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)
	entries, err := repo.List(ctx, from, to)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries in range, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if !entries[i-1].Date.Before(entries[i].Date) {
			t.Fatal("entries not ordered by date")
		}
	}
}

func TestConcurrentWritersAreSerialized(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			date := time.Date(2025, 4, day%10+1, 0, 0, 0, 0, time.UTC)
			_ = repo.Upsert(ctx, history.Entry{Date: date, TotalCovers: day})
		}(i)
	}
	wg.Wait()

	entries, err := repo.List(ctx, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("expected 10 distinct dates, got %d", len(entries))
	}
}
