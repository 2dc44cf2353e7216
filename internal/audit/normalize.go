package audit

import (
	"strings"

	"prospect-engine/internal/domain"
)

// Fallbacks used when the generator output is missing a segment. One distinct
// default per field so a blank audit is still distinguishable downstream.
const (
	FallbackBest       = "High Potential Service"
	FallbackLacking    = "Zero Digital Footprint"
	FallbackCompetitor = "Rivals have better SEO/Web"
)

// Normalize parses the generator's "Best: ... | Lacking: ... | Competitor: ..."
// convention into structured fields. It never fails: missing or empty segments
// take their fallback, so the result is always complete and non-empty.
func Normalize(raw string) domain.AuditResult {
	parts := strings.Split(raw, "|")

	return domain.AuditResult{
		Best:       segment(parts, 0, "Best:", FallbackBest),
		Lacking:    segment(parts, 1, "Lacking:", FallbackLacking),
		Competitor: segment(parts, 2, "Competitor:", FallbackCompetitor),
	}
}

func segment(parts []string, idx int, label, fallback string) string {
	if idx >= len(parts) {
		return fallback
	}
	s := strings.TrimSpace(parts[idx])
	s = strings.TrimSpace(strings.TrimPrefix(s, label))
	if s == "" {
		return fallback
	}
	return s
}
