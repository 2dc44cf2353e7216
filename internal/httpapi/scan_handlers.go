package httpapi

import (
	"context"
	"net/http"
)

type ScanHandler struct {
	TriggerScan func(ctx context.Context) bool
}

// Run triggers one cycle out of band. 202 when started, 409 when a cycle is
// already in flight — overlapping cycles are skipped, never queued.
func (h ScanHandler) Run(w http.ResponseWriter, r *http.Request) {
	if h.TriggerScan == nil {
		WriteError(w, r, http.StatusServiceUnavailable, "scan_unavailable", "scan trigger not wired")
		return
	}
	if !h.TriggerScan(context.WithoutCancel(r.Context())) {
		WriteError(w, r, http.StatusConflict, "scan_in_progress", "a cycle is already running")
		return
	}
	WriteJSON(w, http.StatusAccepted, map[string]any{"ok": true})
}
