package httpapi

import (
	"context"
	"database/sql"
	"net/http"

	"prospect-engine/internal/events"
	"prospect-engine/internal/pipeline"
)

type Deps struct {
	DB  *sql.DB
	Hub *events.Hub

	// LeadsCSVPath is the canonical export artifact served by /export.
	LeadsCSVPath string

	// Status reads the runner's latest snapshot.
	Status func() pipeline.Status

	// TriggerScan starts a cycle unless one is running; reports whether it
	// started. Injected for testability.
	TriggerScan func(ctx context.Context) bool

	// Metrics serves the Prometheus registry; nil disables /metrics.
	Metrics http.Handler
}
