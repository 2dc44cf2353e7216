package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/gofrs/flock"

	"prospect-engine/internal/domain"
)

// ErrUnavailable wraps any failure of the underlying medium. The orchestrator
// reports it to the operator and keeps processing; the lead is not re-queued.
var ErrUnavailable = errors.New("lead store unavailable")

// Header is the fixed 12-column schema of the lead file. Written once when the
// file is created, never rewritten on later appends.
var Header = []string{
	"Business Name", "Category", "City", "Phone", "Email", "Socials",
	"Rating", "Reviews", "Why Best", "Why Lacking", "Competitor Ahead", "Date",
}

// LeadCSV is the durable append-only lead store. Appends are guarded by an
// in-process mutex plus an OS-level flock so the contract holds even with
// more than one logical writer. No deduplication: identical appends yield
// identical rows.
type LeadCSV struct {
	path string
	mu   sync.Mutex
	fl   *flock.Flock
}

func NewLeadCSV(path string) *LeadCSV {
	return &LeadCSV{
		path: path,
		fl:   flock.New(path + ".lock"),
	}
}

func (s *LeadCSV) Path() string { return s.path }

// Append adds one record without disturbing previously stored rows.
func (s *LeadCSV) Append(rec domain.LeadRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fl.Lock(); err != nil {
		return fmt.Errorf("%w: lock: %v", ErrUnavailable, err)
	}
	defer func() { _ = s.fl.Unlock() }()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open: %v", ErrUnavailable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat: %v", ErrUnavailable, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("%w: write header: %v", ErrUnavailable, err)
		}
	}

	row := []string{
		rec.Name,
		rec.Category,
		rec.Location,
		rec.Phone,
		rec.Email,
		rec.Socials,
		strconv.FormatFloat(rec.Rating, 'f', -1, 64),
		strconv.Itoa(rec.ReviewCount),
		rec.Best,
		rec.Lacking,
		rec.Competitor,
		rec.CapturedAt.Format("2006-01-02"),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("%w: write row: %v", ErrUnavailable, err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flush: %v", ErrUnavailable, err)
	}
	return nil
}
