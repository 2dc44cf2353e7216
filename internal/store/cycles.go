package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CycleRow is one completed (or failed) scan cycle in the local index.
type CycleRow struct {
	ID         int64     `json:"id"`
	Location   string    `json:"location"`
	Category   string    `json:"category"`
	Found      int       `json:"found"`
	Accepted   int       `json:"accepted"`
	Skipped    int       `json:"skipped"`
	Errored    int       `json:"errored"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

func InsertCycle(ctx context.Context, db *sql.DB, c CycleRow) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO cycles (location, category, found, accepted, skipped, errored, error, started_at, finished_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		c.Location, c.Category, c.Found, c.Accepted, c.Skipped, c.Errored, c.Error,
		c.StartedAt.UTC().Format(time.RFC3339), c.FinishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert cycle: %w", err)
	}
	return nil
}

func ListCycles(ctx context.Context, db *sql.DB, limit int) ([]CycleRow, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.QueryContext(ctx, `
SELECT id, location, category, found, accepted, skipped, errored, error, started_at, finished_at
FROM cycles
ORDER BY id DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CycleRow
	for rows.Next() {
		var c CycleRow
		var started, finished string
		if err := rows.Scan(&c.ID, &c.Location, &c.Category, &c.Found, &c.Accepted,
			&c.Skipped, &c.Errored, &c.Error, &started, &finished); err != nil {
			return nil, err
		}
		c.StartedAt, _ = time.Parse(time.RFC3339, started)
		c.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		out = append(out, c)
	}
	return out, rows.Err()
}
