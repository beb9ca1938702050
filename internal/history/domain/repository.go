package history

import (
	"context"
	"time"
)

// Repository is the durable day log. Upsert replaces any existing
// entry for the same date: reimporting a corrected export must not
// duplicate the day.
type Repository interface {
	Upsert(ctx context.Context, entry Entry) error
	List(ctx context.Context, from, to time.Time) ([]Entry, error)
}
