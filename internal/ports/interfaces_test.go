package ports_test

import (
	"testing"

	"github.com/emiliopalmerini/mcba/internal/adapters/memory"
	"github.com/emiliopalmerini/mcba/internal/adapters/otel"
	"github.com/emiliopalmerini/mcba/internal/ports"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestTreatmentStoreConformance(t *testing.T) {
	var _ ports.TreatmentStore = (*memory.TreatmentStore)(nil)
}

func TestMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.Exporter)(nil)
}

func TestNoOpExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.NoOpExporter)(nil)
}
