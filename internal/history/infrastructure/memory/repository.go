package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	history "github.com/Chrisvtg92/the-hive-dashboard/internal/history/domain"
)

// Repository is a mutex-guarded in-memory day log for tests and
// database-less runs.
type Repository struct {
	mu      sync.Mutex
	entries map[string]history.Entry
}

// NewRepository constructs an empty repository.
func NewRepository() *Repository {
	return &Repository{entries: make(map[string]history.Entry)}
}

// Upsert replaces any entry sharing the date.
func (r *Repository) Upsert(_ context.Context, entry history.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[dayKey(entry.Date)] = entry
	return nil
}

// List returns entries within [from, to] ordered by date.
func (r *Repository) List(_ context.Context, from, to time.Time) ([]history.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []history.Entry
	for _, entry := range r.entries {
		if !from.IsZero() && entry.Date.Before(from) {
			continue
		}
		if !to.IsZero() && entry.Date.After(to) {
			continue
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func dayKey(date time.Time) string {
	return date.Format("2006-01-02")
}
