package httpapi

import (
	"net/http"
	"time"

	"prospect-engine/internal/pipeline"
)

type StatusHandler struct {
	Status func() pipeline.Status
}

// Root is the uptime-monitor liveness probe: fixed text, always 200.
func (h StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("System Status: active"))
}

func (h StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"ok": true, "time": time.Now().Format(time.RFC3339)})
}

func (h StatusHandler) ScanStatus(w http.ResponseWriter, r *http.Request) {
	if h.Status == nil {
		writeJSON(w, pipeline.Status{})
		return
	}
	writeJSON(w, h.Status())
}
