package pipeline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"prospect-engine/internal/audit"
	"prospect-engine/internal/domain"
	"prospect-engine/internal/events"
	"prospect-engine/internal/notify"
	"prospect-engine/internal/qualify"
	"prospect-engine/internal/rotation"
	"prospect-engine/internal/store"
)

// ErrProviderUnavailable marks a failed directory search. It aborts the
// current cycle's candidate loop, never the process.
var ErrProviderUnavailable = errors.New("search provider unavailable")

// DirectorySearcher is the primary-query capability of the search provider.
type DirectorySearcher interface {
	DirectorySearch(ctx context.Context, query string) ([]domain.Candidate, error)
}

// EmailResolver discovers a contact address; absence is a value, not an error.
type EmailResolver interface {
	Resolve(ctx context.Context, c domain.Candidate, pair domain.Pair) (string, bool)
}

// LeadAppender is the durable lead sink.
type LeadAppender interface {
	Append(rec domain.LeadRecord) error
}

// CycleReport summarizes one full pass over the current pair's candidates.
type CycleReport struct {
	Pair       domain.Pair
	Found      int
	Accepted   int
	Skipped    int
	Errored    int
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Orchestrator ties the rotator, filter, resolver, generator, store, and sink
// into one cycle. Every failure is absorbed at its call site: the process
// never terminates because a single cycle went wrong.
type Orchestrator struct {
	Rotator   *rotation.Rotator
	Search    DirectorySearcher
	Enrich    EmailResolver
	Generator audit.Generator
	Store     LeadAppender
	DB        *sql.DB // optional local index
	Sink      notify.Sink
	Hub       *events.Hub
	Metrics   *Metrics
	MinRating float64

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (o *Orchestrator) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// RunCycle processes the current pair and advances the rotation exactly once,
// regardless of outcome.
func (o *Orchestrator) RunCycle(ctx context.Context) CycleReport {
	pair := o.Rotator.Current()
	report := CycleReport{Pair: pair, StartedAt: o.now()}

	defer func() {
		o.Rotator.Advance()
		o.finishCycle(ctx, &report)
	}()

	o.send(ctx, notify.Log, fmt.Sprintf("🔍 [SCANNING]: Hunting for %s in %s...", pair.Category, pair.Location))

	searchStart := o.now()
	candidates, err := o.Search.DirectorySearch(ctx, pair.Category+" in "+pair.Location)
	o.Metrics.ObserveSearch(o.now().Sub(searchStart))
	if err != nil {
		report.Err = fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		o.Metrics.IncError("provider_unavailable")
		o.send(ctx, notify.Log, fmt.Sprintf("🚨 [ERROR]: %v", err))
		return report
	}

	report.Found = len(candidates)
	for _, c := range candidates {
		o.processCandidate(ctx, c, pair, &report)
	}
	return report
}

// processCandidate runs one candidate through filter, enrichment, audit, and
// persistence. Provider order is preserved; candidates are strictly
// sequential.
func (o *Orchestrator) processCandidate(ctx context.Context, c domain.Candidate, pair domain.Pair, report *CycleReport) {
	verdict := qualify.Evaluate(c, o.MinRating)
	if !verdict.Accepted() {
		report.Skipped++
		o.Metrics.IncCandidate("skipped")
		o.send(ctx, notify.Log, fmt.Sprintf("⏩ [SKIP]: %s (%s)", c.Name, verdict.Reason()))
		return
	}

	email, ok := o.Enrich.Resolve(ctx, c, pair)
	if !ok {
		report.Skipped++
		o.Metrics.IncCandidate("no_email")
		o.send(ctx, notify.Log, fmt.Sprintf("❌ [REJECT]: %s (Email Not Found)", c.Name))
		return
	}

	raw, err := o.Generator.Audit(ctx, c, pair)
	if err != nil {
		// Dropped without a notification, unlike every other reject path.
		// Counted so the asymmetry is at least observable.
		report.Errored++
		o.Metrics.IncError("generator_failure")
		log.Printf("[pipeline] audit failed name=%q err=%v", c.Name, err)
		return
	}
	result := audit.Normalize(raw)

	rating := 0.0
	if c.Rating != nil {
		rating = *c.Rating
	}
	rec := domain.LeadRecord{
		Name:        c.Name,
		Category:    pair.Category,
		Location:    pair.Location,
		Phone:       c.Phone,
		Email:       email,
		Socials:     "Verified",
		Rating:      rating,
		ReviewCount: c.ReviewCount,
		Best:        result.Best,
		Lacking:     result.Lacking,
		Competitor:  result.Competitor,
		CapturedAt:  o.now(),
	}

	if err := o.Store.Append(rec); err != nil {
		report.Errored++
		o.Metrics.IncError("storage_unavailable")
		o.send(ctx, notify.Log, fmt.Sprintf("🚨 [ERROR]: store append failed for %s: %v", c.Name, err))
		return
	}

	if o.DB != nil {
		if err := store.InsertLead(ctx, o.DB, rec); err != nil {
			log.Printf("[pipeline] lead index insert failed name=%q err=%v", c.Name, err)
		}
	}

	report.Accepted++
	o.Metrics.IncCandidate("accepted")
	o.Metrics.IncLead()

	o.send(ctx, notify.Lead, fmt.Sprintf("✅ **HQ LEAD FOUND**\n🏢 **%s**\n📧 %s\n📍 %s\n⭐ %.1f",
		c.Name, email, pair.Location, rating))
	o.send(ctx, notify.Log, fmt.Sprintf("✔️ [LOG]: %s added to CSV.", c.Name))

	if o.Hub != nil {
		o.Hub.Publish(events.MakeEvent("", "lead_found", 1, map[string]any{
			"name": c.Name, "location": pair.Location, "category": pair.Category,
		}))
	}
}

func (o *Orchestrator) finishCycle(ctx context.Context, report *CycleReport) {
	report.FinishedAt = o.now()
	o.Metrics.IncCycle()

	if o.DB != nil {
		row := store.CycleRow{
			Location:   report.Pair.Location,
			Category:   report.Pair.Category,
			Found:      report.Found,
			Accepted:   report.Accepted,
			Skipped:    report.Skipped,
			Errored:    report.Errored,
			StartedAt:  report.StartedAt,
			FinishedAt: report.FinishedAt,
		}
		if report.Err != nil {
			row.Error = report.Err.Error()
		}
		if err := store.InsertCycle(ctx, o.DB, row); err != nil {
			log.Printf("[pipeline] cycle insert failed: %v", err)
		}
	}

	if o.Hub != nil {
		o.Hub.Publish(events.MakeEvent("", "cycle_finished", 1, map[string]any{
			"location": report.Pair.Location,
			"category": report.Pair.Category,
			"accepted": report.Accepted,
			"skipped":  report.Skipped,
		}))
	}
}

// send delivers a notification and logs delivery failures. Fire-and-forget:
// a dead sink never stalls the pipeline.
func (o *Orchestrator) send(ctx context.Context, ch notify.Channel, msg string) {
	if o.Sink == nil {
		return
	}
	if err := o.Sink.Send(ctx, ch, msg); err != nil {
		log.Printf("[pipeline] notify failed: %v", err)
	}
}
