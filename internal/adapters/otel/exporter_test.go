package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/emiliopalmerini/mcba/internal/ports"
)

func TestNewExporter_Disabled(t *testing.T) {
	_, err := NewExporter(context.Background(), Config{Enabled: false, Endpoint: "localhost:4317"})
	assert.Error(t, err)

	_, err = NewExporter(context.Background(), Config{Enabled: true})
	assert.Error(t, err)
}

func TestExporter_ExportAnalysis(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	e, err := newInstruments(provider.Meter(serviceName))
	require.NoError(t, err)
	e.provider = provider

	err = e.ExportAnalysis(ctx, &ports.AnalysisRun{
		Source:         "rank",
		TreatmentCount: 4,
		TopName:        "Precision irrigation upgrade",
		TopNPV:         300000,
		BottomNPV:      0,
		TotalBenefits:  1660000,
		TotalCosts:     880000,
	})
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	names := map[string]bool{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		names[m.Name] = true
		if m.Name == "mcba_analysis_runs_total" {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			require.Len(t, sum.DataPoints, 1)
			assert.Equal(t, int64(1), sum.DataPoints[0].Value)
		}
	}
	for _, want := range []string{
		"mcba_analysis_runs_total",
		"mcba_analysis_treatments",
		"mcba_analysis_top_npv",
		"mcba_analysis_npv_spread",
		"mcba_analysis_pv_benefits",
		"mcba_analysis_pv_costs",
	} {
		assert.True(t, names[want], "missing metric %s", want)
	}

	assert.NoError(t, e.Close(ctx))
}

func TestNoOpExporter(t *testing.T) {
	var e ports.MetricsExporter = NewNoOpExporter()
	assert.NoError(t, e.ExportAnalysis(context.Background(), &ports.AnalysisRun{}))
	assert.NoError(t, e.Close(context.Background()))
}
