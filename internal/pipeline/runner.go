package pipeline

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"prospect-engine/internal/scheduler"
)

// Status is a point-in-time snapshot for the local API.
type Status struct {
	Running      bool   `json:"running"`
	LastLocation string `json:"last_location"`
	LastCategory string `json:"last_category"`
	LastAccepted int    `json:"last_accepted"`
	LastError    string `json:"last_error"`
	LastOkAt     string `json:"last_ok_at"`
	LastRunAt    string `json:"last_run_at"`
}

// Runner drives the orchestrator on a fixed interval with one eager run at
// startup. A tick that fires while a cycle is still running is skipped, not
// queued, so cycles never overlap.
type Runner struct {
	Orch     *Orchestrator
	Interval time.Duration

	running atomic.Bool
	status  atomic.Value // Status
}

func (r *Runner) Status() Status {
	if s, ok := r.status.Load().(Status); ok {
		return s
	}
	return Status{}
}

// Run blocks until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	scheduler.Every(ctx, r.Interval, "pipeline", func(ctx context.Context) error {
		r.RunOnce(ctx)
		return nil
	})
	return ctx.Err()
}

// RunOnce executes a single cycle unless one is already in flight. Reports
// whether the cycle actually started.
func (r *Runner) RunOnce(ctx context.Context) bool {
	if !r.running.CompareAndSwap(false, true) {
		log.Printf("[runner] cycle still in progress, skipping tick")
		return false
	}
	defer r.running.Store(false)

	r.cycle(ctx)
	return true
}

// TryStartAsync launches a cycle in the background, for the manual-trigger
// HTTP path. Same guard as RunOnce: an in-flight cycle wins.
func (r *Runner) TryStartAsync(ctx context.Context) bool {
	if !r.running.CompareAndSwap(false, true) {
		return false
	}
	go func() {
		defer r.running.Store(false)
		r.cycle(ctx)
	}()
	return true
}

func (r *Runner) cycle(ctx context.Context) {
	st := r.Status()
	st.Running = true
	st.LastRunAt = time.Now().Format(time.RFC3339)
	r.status.Store(st)

	report := r.Orch.RunCycle(ctx)

	st.Running = false
	st.LastLocation = report.Pair.Location
	st.LastCategory = report.Pair.Category
	st.LastAccepted = report.Accepted
	if report.Err != nil {
		st.LastError = report.Err.Error()
		log.Printf("[runner] cycle error pair=%q/%q err=%v", report.Pair.Location, report.Pair.Category, report.Err)
	} else {
		st.LastError = ""
		st.LastOkAt = time.Now().Format(time.RFC3339)
		log.Printf("[runner] cycle ok pair=%q/%q found=%d accepted=%d skipped=%d",
			report.Pair.Location, report.Pair.Category, report.Found, report.Accepted, report.Skipped)
	}
	r.status.Store(st)
}
