package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mcba/internal/adapters/dataset"
	"github.com/emiliopalmerini/mcba/internal/adapters/memory"
	"github.com/emiliopalmerini/mcba/internal/adapters/otel"
	"github.com/emiliopalmerini/mcba/internal/analysis"
	"github.com/emiliopalmerini/mcba/internal/domain"
	"github.com/emiliopalmerini/mcba/internal/infrastructure/config"
	"github.com/emiliopalmerini/mcba/internal/logging"
	"github.com/emiliopalmerini/mcba/internal/ports"
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config   *config.Config
	Log      *logrus.Logger
	Store    ports.TreatmentStore
	Exporter ports.MetricsExporter
	Format   analysis.Formatter
}

// app is set up before every command runs.
var app *AppContext

// NewAppContext creates an AppContext with all dependencies initialized.
// An OTEL exporter that cannot be created degrades to a no-op.
func NewAppContext(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	log, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, err
	}

	var exporter ports.MetricsExporter = otel.NewNoOpExporter()
	if cfg.OTEL.Enabled {
		exp, err := otel.NewExporter(ctx, otel.FromConfig(cfg.OTEL))
		if err != nil {
			log.WithError(err).Warn("metrics export disabled")
		} else {
			exporter = exp
		}
	}

	return &AppContext{
		Config:   cfg,
		Log:      log,
		Store:    memory.NewTreatmentStore(),
		Exporter: exporter,
		Format:   analysis.Formatter{Currency: cfg.CurrencySymbol},
	}, nil
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close(ctx context.Context) error {
	if a.Exporter != nil {
		return a.Exporter.Close(ctx)
	}
	return nil
}

// LoadInitial fills the store from --input or --demo. With neither the
// store stays empty.
func (a *AppContext) LoadInitial(path string, demo bool) error {
	switch {
	case path != "" && demo:
		return fmt.Errorf("use either --input or --demo, not both")
	case path != "":
		if err := dataset.LoadInto(a.Store, path); err != nil {
			return err
		}
		a.Log.WithFields(logrus.Fields{"path": path, "treatments": a.Store.Len()}).Debug("dataset loaded")
	case demo:
		a.Store.ReplaceAll(domain.DemoTreatments())
	}
	return nil
}

// Analyze derives and ranks the store contents and reports the run to the
// metrics exporter. records keeps insertion order.
func (a *AppContext) Analyze(ctx context.Context, source string) (records, ranked []domain.Treatment) {
	records = a.Store.List()
	ranked = analysis.Analyze(records)
	if err := a.Exporter.ExportAnalysis(ctx, analysis.NewRun(source, ranked)); err != nil {
		a.Log.WithError(err).Warn("failed to export analysis metrics")
	}
	return records, ranked
}

func setupApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	a, err := NewAppContext(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	a.Log.SetOutput(cmd.ErrOrStderr())

	if err := a.LoadInitial(inputPath, useDemo); err != nil {
		_ = a.Close(cmd.Context())
		return err
	}
	app = a
	return nil
}

func teardownApp(cmd *cobra.Command, args []string) error {
	if app == nil {
		return nil
	}
	err := app.Close(cmd.Context())
	app = nil
	return err
}
