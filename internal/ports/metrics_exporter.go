package ports

import "context"

// MetricsExporter exports analysis runs to an external observability system.
type MetricsExporter interface {
	// ExportAnalysis records one ranking of a treatment set.
	ExportAnalysis(ctx context.Context, run *AnalysisRun) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// AnalysisRun summarises a single ranking for export.
type AnalysisRun struct {
	Source         string // cli command or web route that produced the ranking
	TreatmentCount int
	TopName        string
	TopNPV         float64
	BottomNPV      float64
	TotalBenefits  float64
	TotalCosts     float64
}
