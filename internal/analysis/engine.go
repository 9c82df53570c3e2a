// Package analysis derives cost-benefit metrics for treatments, ranks them,
// and projects the ranking into rows, cards, narrative text and CSV.
// Every function is pure over its arguments; none of them log or render.
package analysis

import (
	"sort"

	"github.com/emiliopalmerini/mcba/internal/domain"
)

// Derive returns NPV, BCR and ROI for t. BCR and ROI are nil when PVCosts <= 0.
func Derive(t domain.Treatment) domain.Metrics {
	return domain.Derive(t.PVBenefits, t.PVCosts)
}

// DeriveAll recomputes the derived fields of every record in place.
func DeriveAll(records []domain.Treatment) {
	for i := range records {
		records[i].Apply(Derive(records[i]))
	}
}

// Rank returns the records ordered by NPV descending. Records with equal
// NPV keep their relative input order. The input slice is not modified.
func Rank(records []domain.Treatment) []domain.Treatment {
	ranked := make([]domain.Treatment, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].NPV > ranked[j].NPV
	})
	return ranked
}

// Analyze derives and ranks a snapshot of records in one step.
func Analyze(records []domain.Treatment) []domain.Treatment {
	DeriveAll(records)
	return Rank(records)
}
