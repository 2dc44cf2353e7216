package httpapi

import "net/http"

func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Liveness root for uptime monitors: fixed text, always 200.
	sh := StatusHandler{Status: d.Status}
	mux.HandleFunc("/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Root,
	}))
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Health,
	}))
	mux.HandleFunc("/scan/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.ScanStatus,
	}))

	lh := LeadsHandler{DB: d.DB, CSVPath: d.LeadsCSVPath}
	mux.HandleFunc("/leads", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.List,
	}))
	mux.HandleFunc("/export", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.Export,
	}))

	ch := CyclesHandler{DB: d.DB}
	mux.HandleFunc("/cycles", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.List,
	}))

	sch := ScanHandler{TriggerScan: d.TriggerScan}
	mux.HandleFunc("/scan/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sch.Run,
	}))

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	if d.Metrics != nil {
		mux.Handle("/metrics", d.Metrics)
	}

	return mux
}
