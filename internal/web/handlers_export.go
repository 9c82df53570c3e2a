package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/emiliopalmerini/mcba/internal/analysis"
)

const exportFilename = "treatments.csv"

// handleExportCSV serves the CSV export in insertion order. An empty store
// is refused with 409 rather than producing an empty file.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	records, _ := s.snapshot()
	s.mu.Unlock()

	out, err := analysis.ToCSV(records)
	if errors.Is(err, analysis.ErrNoTreatments) {
		s.metrics.exportsRejected.Inc()
		if strings.HasPrefix(r.URL.Path, "/api/") {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	_, _ = w.Write([]byte(out))
}
