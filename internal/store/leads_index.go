package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"prospect-engine/internal/domain"
)

// LeadRow mirrors an appended lead for the local API. The CSV file stays the
// canonical export artifact; this table only serves listing.
type LeadRow struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Location   string    `json:"location"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Rating     float64   `json:"rating"`
	Reviews    int       `json:"reviews"`
	CapturedAt time.Time `json:"capturedAt"`
}

func InsertLead(ctx context.Context, db *sql.DB, rec domain.LeadRecord) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO leads (name, category, location, phone, email, rating, reviews, captured_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		rec.Name, rec.Category, rec.Location, rec.Phone, rec.Email,
		rec.Rating, rec.ReviewCount, rec.CapturedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

func ListLeads(ctx context.Context, db *sql.DB, limit int) ([]LeadRow, error) {
	if limit <= 0 {
		limit = 500
	}
	rows, err := db.QueryContext(ctx, `
SELECT id, name, category, location, phone, email, rating, reviews, captured_at
FROM leads
ORDER BY id DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LeadRow
	for rows.Next() {
		var l LeadRow
		var captured string
		if err := rows.Scan(&l.ID, &l.Name, &l.Category, &l.Location, &l.Phone,
			&l.Email, &l.Rating, &l.Reviews, &captured); err != nil {
			return nil, err
		}
		l.CapturedAt, _ = time.Parse(time.RFC3339, captured)
		out = append(out, l)
	}
	return out, rows.Err()
}
