package httpapi

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"prospect-engine/internal/store"
)

type LeadsHandler struct {
	DB      *sql.DB
	CSVPath string
}

func (h LeadsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	leads, err := store.ListLeads(r.Context(), h.DB, limit)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}
	if leads == nil {
		leads = []store.LeadRow{}
	}
	writeJSON(w, leads)
}

// Export serves the append-only lead file as a download attachment.
func (h LeadsHandler) Export(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(h.CSVPath); err != nil {
		WriteError(w, r, http.StatusNotFound, "no_export", "no leads captured yet")
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(h.CSVPath)+`"`)
	http.ServeFile(w, r, h.CSVPath)
}
