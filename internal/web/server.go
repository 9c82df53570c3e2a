package web

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/emiliopalmerini/mcba/internal/analysis"
	"github.com/emiliopalmerini/mcba/internal/domain"
	"github.com/emiliopalmerini/mcba/internal/ports"
)

// Server exposes one treatment store over HTTP. Requests are serialised
// through mu because the store itself is single-owner.
type Server struct {
	router   *http.ServeMux
	port     int
	format   analysis.Formatter
	exporter ports.MetricsExporter
	log      logrus.FieldLogger
	metrics  *httpMetrics
	registry *prometheus.Registry

	mu    sync.Mutex
	store ports.TreatmentStore
}

func NewServer(
	store ports.TreatmentStore,
	port int,
	format analysis.Formatter,
	exporter ports.MetricsExporter,
	log logrus.FieldLogger,
) *Server {
	reg := prometheus.NewRegistry()
	s := &Server{
		router:   http.NewServeMux(),
		port:     port,
		format:   format,
		exporter: exporter,
		log:      log,
		metrics:  newHTTPMetrics(reg),
		registry: reg,
		store:    store,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	// Page and form posts
	s.router.HandleFunc("GET /{$}", s.handlePage)
	s.router.HandleFunc("POST /treatments", s.handleFormAdd)
	s.router.HandleFunc("POST /treatments/{id}", s.handleFormUpdate)
	s.router.HandleFunc("POST /treatments/{id}/delete", s.handleFormDelete)
	s.router.HandleFunc("POST /demo", s.handleFormDemo)
	s.router.HandleFunc("POST /clear", s.handleFormClear)
	s.router.HandleFunc("GET /export.csv", s.handleExportCSV)

	// JSON API
	s.router.HandleFunc("GET /api/treatments", s.handleAPIListTreatments)
	s.router.HandleFunc("POST /api/treatments", s.handleAPICreateTreatment)
	s.router.HandleFunc("PUT /api/treatments/{id}", s.handleAPIUpdateTreatment)
	s.router.HandleFunc("DELETE /api/treatments/{id}", s.handleAPIDeleteTreatment)
	s.router.HandleFunc("POST /api/treatments/demo", s.handleAPILoadDemo)
	s.router.HandleFunc("POST /api/treatments/clear", s.handleAPIClear)
	s.router.HandleFunc("GET /api/ranking", s.handleAPIRanking)
	s.router.HandleFunc("GET /api/summary", s.handleAPISummary)
	s.router.HandleFunc("GET /api/export.csv", s.handleExportCSV)
}

// Handler returns the instrumented router.
func (s *Server) Handler() http.Handler {
	return s.instrument(s.router)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.WithField("addr", fmt.Sprintf("http://localhost:%d", s.port)).Info("starting server")

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// snapshot derives and ranks the current records. Callers hold s.mu.
func (s *Server) snapshot() (records, ranked []domain.Treatment) {
	records = s.store.List()
	ranked = analysis.Analyze(records)
	return records, ranked
}

func (s *Server) export(ctx context.Context, source string, ranked []domain.Treatment) {
	if err := s.exporter.ExportAnalysis(ctx, analysis.NewRun(source, ranked)); err != nil {
		s.log.WithError(err).Warn("failed to export analysis metrics")
	}
}
