package httpapi

import (
	"database/sql"
	"net/http"
	"strconv"

	"prospect-engine/internal/store"
)

type CyclesHandler struct {
	DB *sql.DB
}

func (h CyclesHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	cycles, err := store.ListCycles(r.Context(), h.DB, limit)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}
	if cycles == nil {
		cycles = []store.CycleRow{}
	}
	writeJSON(w, cycles)
}
