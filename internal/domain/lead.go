package domain

import "time"

// Pair is one (location, category) combination driving a scan cycle.
type Pair struct {
	Location string
	Category string
}

// Candidate is a raw directory result for a pair. Transient, never persisted.
type Candidate struct {
	Name        string
	HasWebsite  bool
	Phone       string   // empty = absent
	Rating      *float64 // nil = unrated
	ReviewCount int
}

// AuditResult holds the three normalized audit fields. Fields are never empty;
// missing segments are replaced with fixed fallbacks by audit.Normalize.
type AuditResult struct {
	Best       string
	Lacking    string
	Competitor string
}

// LeadRecord is the unit of persistence. Immutable once appended.
type LeadRecord struct {
	Name        string
	Category    string
	Location    string
	Phone       string
	Email       string
	Socials     string
	Rating      float64
	ReviewCount int
	Best        string
	Lacking     string
	Competitor  string
	CapturedAt  time.Time
}
