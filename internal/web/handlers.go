package web

import (
	"net/http"

	"github.com/emiliopalmerini/mcba/internal/domain"
	"github.com/emiliopalmerini/mcba/internal/web/templates"
)

const pageTitle = "Treatment cost-benefit comparison"

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	records, ranked := s.snapshot()
	s.mu.Unlock()

	s.export(r.Context(), "web", ranked)

	view := templates.PageView{
		Title:   pageTitle,
		Notice:  r.URL.Query().Get("notice"),
		Rows:    s.format.Rows(ranked),
		Cards:   s.format.Cards(ranked),
		Summary: s.format.Summarize(ranked),
		Stats:   statsFigures(s.format, ranked),
		Inputs:  inputViews(records),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Page(view).Render(r.Context(), w); err != nil {
		s.log.WithError(err).Error("failed to render page")
	}
}

func (s *Server) handleFormAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	id := s.store.Add(formInput(r))
	s.mu.Unlock()

	s.log.WithField("id", id).Info("treatment added")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleFormUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if id, ok := pathID(r); ok {
		s.mu.Lock()
		s.store.Update(id, formInput(r))
		s.mu.Unlock()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleFormDelete(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(r); ok {
		s.mu.Lock()
		s.store.Remove(id)
		s.mu.Unlock()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleFormDemo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.store.ReplaceAll(domain.DemoTreatments())
	s.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleFormClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.store.Clear()
	s.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
