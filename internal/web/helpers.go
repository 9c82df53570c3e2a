package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/emiliopalmerini/mcba/internal/analysis"
	"github.com/emiliopalmerini/mcba/internal/domain"
	"github.com/emiliopalmerini/mcba/internal/util"
	"github.com/emiliopalmerini/mcba/internal/web/templates"
)

// pathID parses the {id} path value. Unknown or malformed ids are reported
// as ok=false so handlers can treat them as no-ops.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// formInput coerces the posted form fields. Absent fields stay unset so an
// update only touches what the form sent.
func formInput(r *http.Request) domain.TreatmentInput {
	var in domain.TreatmentInput
	if _, ok := r.PostForm["name"]; ok {
		name := util.SingleLine(r.PostFormValue("name"))
		in.Name = &name
	}
	if _, ok := r.PostForm["pv_benefits"]; ok {
		v := util.ParseAmount(r.PostFormValue("pv_benefits"))
		in.PVBenefits = &v
	}
	if _, ok := r.PostForm["pv_costs"]; ok {
		v := util.ParseAmount(r.PostFormValue("pv_costs"))
		in.PVCosts = &v
	}
	if _, ok := r.PostForm["notes"]; ok {
		notes := util.SingleLine(r.PostFormValue("notes"))
		in.Notes = &notes
	}
	return in
}

// inputViews returns the raw editable values for each record.
func inputViews(records []domain.Treatment) map[int]templates.InputView {
	out := make(map[int]templates.InputView, len(records))
	for _, r := range records {
		out[r.ID] = templates.InputView{
			Name:       r.Name,
			PVBenefits: strconv.FormatFloat(r.PVBenefits, 'f', -1, 64),
			PVCosts:    strconv.FormatFloat(r.PVCosts, 'f', -1, 64),
			Notes:      r.Notes,
		}
	}
	return out
}

func statsFigures(f analysis.Formatter, ranked []domain.Treatment) []analysis.Figure {
	if len(ranked) == 0 {
		return nil
	}
	ps := analysis.Stats(ranked)
	return []analysis.Figure{
		{Label: "Treatments", Value: strconv.Itoa(ps.Count)},
		{Label: "Positive NPV", Value: strconv.Itoa(ps.Positive)},
		{Label: "Total benefits", Value: f.Money(ps.TotalBenefits)},
		{Label: "Total costs", Value: f.Money(ps.TotalCosts)},
		{Label: "Mean NPV", Value: f.Money(ps.MeanNPV)},
		{Label: "Median NPV", Value: f.Money(ps.MedianNPV)},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
