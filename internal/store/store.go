package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicateResult is returned when a result with the same ID exists.
var ErrDuplicateResult = errors.New("result already recorded")

// Result is the record of one finished match. Winner is 0 for the human
// side, 1 for the bot and -1 for a draw.
type Result struct {
	ID         uuid.UUID `json:"id"`
	Preset     string    `json:"preset"`
	Bot        string    `json:"bot"`
	Winner     int       `json:"winner"`
	Turns      int       `json:"turns"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Store persists finished match results.
type Store interface {
	SaveResult(ctx context.Context, r Result) error
	// ListResults returns the most recently finished results first. A limit
	// of zero or less returns everything.
	ListResults(ctx context.Context, limit int) ([]Result, error)
}

// Open returns a PostgreSQL store for dsn, or an in-memory store when dsn is
// empty. The returned close function releases the connection pool.
func Open(ctx context.Context, dsn string) (Store, func(), error) {
	if dsn == "" {
		return NewMemoryStore(), func() {}, nil
	}
	pg, err := NewPostgresStore(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	return pg, pg.Close, nil
}
