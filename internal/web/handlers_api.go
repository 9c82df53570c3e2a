package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/emiliopalmerini/mcba/internal/analysis"
	"github.com/emiliopalmerini/mcba/internal/domain"
	"github.com/emiliopalmerini/mcba/internal/util"
)

// amountJSON accepts a JSON number or a numeric string such as "480,000".
type amountJSON struct {
	value *float64
}

func (a *amountJSON) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		a.value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Not a string: coerce the raw number text.
		s = string(data)
	}
	v := util.ParseAmount(s)
	a.value = &v
	return nil
}

type treatmentRequest struct {
	Name       *string    `json:"name"`
	PVBenefits amountJSON `json:"pv_benefits"`
	PVCosts    amountJSON `json:"pv_costs"`
	Notes      *string    `json:"notes"`
}

func (req treatmentRequest) input() domain.TreatmentInput {
	return domain.TreatmentInput{
		Name:       util.SingleLinePtr(req.Name),
		PVBenefits: req.PVBenefits.value,
		PVCosts:    req.PVCosts.value,
		Notes:      util.SingleLinePtr(req.Notes),
	}
}

type treatmentResponse struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	PVBenefits float64  `json:"pv_benefits"`
	PVCosts    float64  `json:"pv_costs"`
	Notes      string   `json:"notes"`
	NPV        float64  `json:"npv"`
	BCR        *float64 `json:"bcr"`
	ROI        *float64 `json:"roi"`
}

type rankingEntry struct {
	Rank      int               `json:"rank"`
	Treatment treatmentResponse `json:"treatment"`
	Display   analysis.Row      `json:"display"`
}

func toResponse(t domain.Treatment) treatmentResponse {
	return treatmentResponse{
		ID:         t.ID,
		Name:       t.Name,
		PVBenefits: t.PVBenefits,
		PVCosts:    t.PVCosts,
		Notes:      t.Notes,
		NPV:        t.NPV,
		BCR:        t.BCR,
		ROI:        t.ROI,
	}
}

func toResponses(records []domain.Treatment) []treatmentResponse {
	out := make([]treatmentResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toResponse(r))
	}
	return out
}

func (s *Server) handleAPIListTreatments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	records, _ := s.snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, toResponses(records))
}

func (s *Server) handleAPICreateTreatment(w http.ResponseWriter, r *http.Request) {
	var req treatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s.mu.Lock()
	id := s.store.Add(req.input())
	t, _ := s.store.Get(id)
	s.mu.Unlock()

	s.log.WithField("id", id).Info("treatment added")
	w.Header().Set("Location", "/api/treatments/"+strconv.Itoa(id))
	writeJSON(w, http.StatusCreated, toResponse(t))
}

// handleAPIUpdateTreatment merges the provided fields. Unknown ids are a
// no-op and still answer 204.
func (s *Server) handleAPIUpdateTreatment(w http.ResponseWriter, r *http.Request) {
	var req treatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.mu.Lock()
	s.store.Update(id, req.input())
	t, found := s.store.Get(id)
	s.mu.Unlock()

	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(t))
}

func (s *Server) handleAPIDeleteTreatment(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(r); ok {
		s.mu.Lock()
		s.store.Remove(id)
		s.mu.Unlock()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAPILoadDemo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.store.ReplaceAll(domain.DemoTreatments())
	records, _ := s.snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, toResponses(records))
}

func (s *Server) handleAPIClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.store.Clear()
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAPIRanking(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	_, ranked := s.snapshot()
	s.mu.Unlock()

	s.export(r.Context(), "api", ranked)

	rows := s.format.Rows(ranked)
	entries := make([]rankingEntry, 0, len(ranked))
	for i, t := range ranked {
		entries = append(entries, rankingEntry{
			Rank:      i + 1,
			Treatment: toResponse(t),
			Display:   rows[i],
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleAPISummary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	_, ranked := s.snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"summary": s.format.Summarize(ranked)})
}
