package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"prospect-engine/internal/pipeline"
)

func TestRootLiveness(t *testing.T) {
	mux := NewMux(Deps{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "System Status: active", rec.Body.String())
}

func TestRootUnknownPathIs404(t *testing.T) {
	mux := NewMux(Deps{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRootRejectsPost(t *testing.T) {
	mux := NewMux(Deps{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestScanStatus(t *testing.T) {
	mux := NewMux(Deps{
		Status: func() pipeline.Status {
			return pipeline.Status{LastLocation: "Miami, FL", LastCategory: "Aesthetic Spa", LastAccepted: 2}
		},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scan/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	require.Contains(t, rec.Body.String(), `"last_location":"Miami, FL"`)
	require.Contains(t, rec.Body.String(), `"last_accepted":2`)
}

func TestExportMissingFile(t *testing.T) {
	mux := NewMux(Deps{LeadsCSVPath: filepath.Join(t.TempDir(), "none.csv")})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "no_export")
}

func TestExportServesCSVAttachment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verified_hq_leads.csv")
	require.NoError(t, os.WriteFile(path, []byte("Business Name,Category\nAcme Spa,Spa\n"), 0o644))

	mux := NewMux(Deps{LeadsCSVPath: path})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="verified_hq_leads.csv"`, rec.Header().Get("Content-Disposition"))
	require.Contains(t, rec.Body.String(), "Acme Spa")
}

func TestScanRunAcceptedAndConflict(t *testing.T) {
	busy := false
	mux := NewMux(Deps{
		TriggerScan: func(context.Context) bool {
			if busy {
				return false
			}
			busy = true
			return true
		},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/scan/run", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Contains(t, rec.Body.String(), `"ok":true`)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/scan/run", nil))
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "scan_in_progress")
}

func TestScanRunRejectsGet(t *testing.T) {
	mux := NewMux(Deps{TriggerScan: func(context.Context) bool { return true }})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scan/run", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
