package cli

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/emiliopalmerini/mcba/internal/adapters/memory"
	"github.com/emiliopalmerini/mcba/internal/adapters/otel"
	"github.com/emiliopalmerini/mcba/internal/analysis"
	"github.com/emiliopalmerini/mcba/internal/infrastructure/config"
	"github.com/emiliopalmerini/mcba/internal/ports"
)

func TestAppContextFieldTypes(t *testing.T) {
	// Compile-time verification that AppContext uses port interfaces.
	var a AppContext
	var _ ports.TreatmentStore = a.Store     //nolint:staticcheck
	var _ ports.MetricsExporter = a.Exporter //nolint:staticcheck
}

func TestAppContextClose_NilExporter(t *testing.T) {
	a := &AppContext{}
	if err := a.Close(context.Background()); err != nil {
		t.Errorf("Close() with no exporter should not error, got: %v", err)
	}
}

func TestNewAppContext_Defaults(t *testing.T) {
	cfg := &config.Config{
		Log:            config.Log{Level: "info", Format: "text"},
		CurrencySymbol: "€",
	}

	a, err := NewAppContext(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewAppContext() error: %v", err)
	}
	defer func() { _ = a.Close(context.Background()) }()

	if _, ok := a.Exporter.(*otel.NoOpExporter); !ok {
		t.Errorf("Exporter = %T, want *otel.NoOpExporter when OTEL is disabled", a.Exporter)
	}
	if a.Format.Currency != "€" {
		t.Errorf("Format.Currency = %q, want %q", a.Format.Currency, "€")
	}
	if a.Store.Len() != 0 {
		t.Errorf("Store.Len() = %d, want 0", a.Store.Len())
	}
}

func TestLoadInitial(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		demo    bool
		wantLen int
		wantErr bool
	}{
		{name: "nothing", wantLen: 0},
		{name: "demo", demo: true, wantLen: 4},
		{name: "both", path: "x.yaml", demo: true, wantErr: true},
		{name: "missing file", path: "does-not-exist.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testApp()
			err := a.LoadInitial(tt.path, tt.demo)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadInitial() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && a.Store.Len() != tt.wantLen {
				t.Errorf("Store.Len() = %d, want %d", a.Store.Len(), tt.wantLen)
			}
		})
	}
}

func TestAnalyze_KeepsInsertionOrderAndRanks(t *testing.T) {
	a := testApp()
	if err := a.LoadInitial("", true); err != nil {
		t.Fatal(err)
	}

	records, ranked := a.Analyze(context.Background(), "test")
	if records[0].ID != 1 {
		t.Errorf("records[0].ID = %d, want 1 (insertion order)", records[0].ID)
	}
	if ranked[0].Name != "Precision irrigation upgrade" {
		t.Errorf("ranked[0].Name = %q, want Precision irrigation upgrade", ranked[0].Name)
	}
}

func testApp() *AppContext {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &AppContext{
		Config:   &config.Config{HTTPPort: 8080, CurrencySymbol: "$"},
		Log:      log,
		Store:    memory.NewTreatmentStore(),
		Exporter: otel.NewNoOpExporter(),
		Format:   analysis.DefaultFormatter,
	}
}
