package analysis

import (
	"github.com/montanaflynn/stats"

	"github.com/emiliopalmerini/mcba/internal/domain"
)

// PortfolioStats summarises a set of treatments.
type PortfolioStats struct {
	Count         int
	TotalBenefits float64
	TotalCosts    float64
	MeanNPV       float64
	MedianNPV     float64
	StdDevNPV     float64
	// Positive counts treatments whose NPV is above zero.
	Positive int
}

// Stats computes portfolio statistics. An empty input yields the zero value.
func Stats(records []domain.Treatment) PortfolioStats {
	ps := PortfolioStats{Count: len(records)}
	if len(records) == 0 {
		return ps
	}

	npvs := make(stats.Float64Data, 0, len(records))
	for _, r := range records {
		ps.TotalBenefits += r.PVBenefits
		ps.TotalCosts += r.PVCosts
		if r.NPV > 0 {
			ps.Positive++
		}
		npvs = append(npvs, r.NPV)
	}

	// stats only errors on empty input, which is handled above.
	ps.MeanNPV, _ = npvs.Mean()
	ps.MedianNPV, _ = npvs.Median()
	ps.StdDevNPV, _ = npvs.StandardDeviationPopulation()
	return ps
}
