package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"prospect-engine/internal/domain"
)

func sampleLead() domain.LeadRecord {
	return domain.LeadRecord{
		Name:        "Acme Spa",
		Category:    "Aesthetic Spa",
		Location:    "Miami, FL",
		Phone:       "+1-555-0100",
		Email:       "info@acmespa.com",
		Socials:     "Verified",
		Rating:      4.6,
		ReviewCount: 120,
		Best:        "Great ambiance",
		Lacking:     "No site",
		Competitor:  "SpaRivals.com has SEO",
		CapturedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestAppendWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.csv")
	s := NewLeadCSV(path)

	require.NoError(t, s.Append(sampleLead()))

	records := readAll(t, path)
	require.Len(t, records, 2)
	require.Equal(t, Header, records[0])
	require.Equal(t, "Acme Spa", records[1][0])
	require.Equal(t, "info@acmespa.com", records[1][4])
	require.Equal(t, "4.6", records[1][6])
	require.Equal(t, "120", records[1][7])
	require.Equal(t, "2026-08-30", records[1][11])
}

func TestAppendNoImplicitDedup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.csv")
	s := NewLeadCSV(path)

	require.NoError(t, s.Append(sampleLead()))
	require.NoError(t, s.Append(sampleLead()))

	records := readAll(t, path)
	require.Len(t, records, 3, "identical appends yield two rows")
	require.Equal(t, records[1], records[2])
}

func TestAppendAcrossReopenKeepsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.csv")

	require.NoError(t, NewLeadCSV(path).Append(sampleLead()))

	// a later run appends without rewriting the header
	second := sampleLead()
	second.Name = "Bayside Dental"
	require.NoError(t, NewLeadCSV(path).Append(second))

	records := readAll(t, path)
	require.Len(t, records, 3)
	require.Equal(t, Header, records[0])
	require.Equal(t, "Acme Spa", records[1][0])
	require.Equal(t, "Bayside Dental", records[2][0])
}

func TestAppendUnwritableMedium(t *testing.T) {
	s := NewLeadCSV(filepath.Join(t.TempDir(), "missing-dir", "leads.csv"))
	err := s.Append(sampleLead())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnavailable)
}
