package analysis

import (
	"github.com/emiliopalmerini/mcba/internal/domain"
	"github.com/emiliopalmerini/mcba/internal/ports"
)

// NewRun summarises a ranked sequence for a metrics exporter.
func NewRun(source string, ranked []domain.Treatment) *ports.AnalysisRun {
	ps := Stats(ranked)
	run := &ports.AnalysisRun{
		Source:         source,
		TreatmentCount: ps.Count,
		TotalBenefits:  ps.TotalBenefits,
		TotalCosts:     ps.TotalCosts,
	}
	if len(ranked) > 0 {
		run.TopName = ranked[0].Name
		run.TopNPV = ranked[0].NPV
		run.BottomNPV = ranked[len(ranked)-1].NPV
	}
	return run
}
