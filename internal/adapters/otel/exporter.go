package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/mcba/internal/ports"
)

const (
	serviceName    = "mcba"
	serviceVersion = "1.0.0"
)

// Exporter exports analysis runs to an OTEL Collector.
type Exporter struct {
	provider      *sdkmetric.MeterProvider
	runsTotal     metric.Int64Counter
	treatments    metric.Int64Histogram
	topNPV        metric.Float64Histogram
	npvSpread     metric.Float64Histogram
	benefitsTotal metric.Float64Counter
	costsTotal    metric.Float64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	e, err := newInstruments(provider.Meter(serviceName))
	if err != nil {
		return nil, err
	}
	e.provider = provider
	return e, nil
}

func newInstruments(meter metric.Meter) (*Exporter, error) {
	runsTotal, err := meter.Int64Counter(
		"mcba_analysis_runs_total",
		metric.WithDescription("Total number of rankings produced"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating runs counter: %w", err)
	}

	treatments, err := meter.Int64Histogram(
		"mcba_analysis_treatments",
		metric.WithDescription("Number of treatments per ranking"),
		metric.WithUnit("{treatment}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating treatments histogram: %w", err)
	}

	topNPV, err := meter.Float64Histogram(
		"mcba_analysis_top_npv",
		metric.WithDescription("NPV of the highest ranked treatment"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating top NPV histogram: %w", err)
	}

	npvSpread, err := meter.Float64Histogram(
		"mcba_analysis_npv_spread",
		metric.WithDescription("NPV gap between highest and lowest ranked treatment"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating NPV spread histogram: %w", err)
	}

	benefitsTotal, err := meter.Float64Counter(
		"mcba_analysis_pv_benefits",
		metric.WithDescription("Total present value of benefits analysed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating benefits counter: %w", err)
	}

	costsTotal, err := meter.Float64Counter(
		"mcba_analysis_pv_costs",
		metric.WithDescription("Total present value of costs analysed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating costs counter: %w", err)
	}

	return &Exporter{
		runsTotal:     runsTotal,
		treatments:    treatments,
		topNPV:        topNPV,
		npvSpread:     npvSpread,
		benefitsTotal: benefitsTotal,
		costsTotal:    costsTotal,
	}, nil
}

// ExportAnalysis records one ranking.
func (e *Exporter) ExportAnalysis(ctx context.Context, run *ports.AnalysisRun) error {
	opt := metric.WithAttributes(attribute.String("source", run.Source))

	e.runsTotal.Add(ctx, 1, opt)
	e.treatments.Record(ctx, int64(run.TreatmentCount), opt)

	if run.TreatmentCount > 0 {
		e.topNPV.Record(ctx, run.TopNPV, opt)
		e.npvSpread.Record(ctx, run.TopNPV-run.BottomNPV, opt)
	}

	// Counters reject negative increments.
	if run.TotalBenefits > 0 {
		e.benefitsTotal.Add(ctx, run.TotalBenefits, opt)
	}
	if run.TotalCosts > 0 {
		e.costsTotal.Add(ctx, run.TotalCosts, opt)
	}

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	if e.provider == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
