package analysis

import (
	"math"
	"testing"

	"github.com/emiliopalmerini/mcba/internal/domain"
)

func TestDerive_Formulas(t *testing.T) {
	tests := []struct {
		name    string
		benefit float64
		cost    float64
	}{
		{"profitable", 480000, 260000},
		{"break-even", 100, 100},
		{"loss", 10, 400},
		{"fractional", 0.3, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Derive(domain.Treatment{PVBenefits: tt.benefit, PVCosts: tt.cost})
			if m.NPV != tt.benefit-tt.cost {
				t.Errorf("NPV = %v, want %v", m.NPV, tt.benefit-tt.cost)
			}
			if m.BCR == nil || *m.BCR != tt.benefit/tt.cost {
				t.Errorf("BCR = %v, want %v", m.BCR, tt.benefit/tt.cost)
			}
			if m.ROI == nil || *m.ROI != (tt.benefit-tt.cost)/tt.cost {
				t.Errorf("ROI = %v, want %v", m.ROI, (tt.benefit-tt.cost)/tt.cost)
			}
		})
	}
}

func TestDerive_NoCostBase(t *testing.T) {
	for _, cost := range []float64{0, -1, -250000} {
		m := Derive(domain.Treatment{PVBenefits: 1000, PVCosts: cost})
		if m.BCR != nil || m.ROI != nil {
			t.Errorf("PVCosts=%v: ratios should be absent, got BCR=%v ROI=%v", cost, m.BCR, m.ROI)
		}
		if m.NPV != 1000-cost {
			t.Errorf("PVCosts=%v: NPV = %v", cost, m.NPV)
		}
	}
}

func TestDeriveAll_Idempotent(t *testing.T) {
	records := []domain.Treatment{
		{ID: 1, PVBenefits: 480000, PVCosts: 260000},
		{ID: 2, PVBenefits: 0, PVCosts: 0},
		{ID: 3, PVBenefits: 1.1, PVCosts: 3.3},
	}

	DeriveAll(records)
	first := snapshot(records)
	DeriveAll(records)
	second := snapshot(records)

	for i := range first {
		for j := range first[i] {
			if math.Float64bits(first[i][j]) != math.Float64bits(second[i][j]) {
				t.Errorf("record %d field %d changed: %v -> %v", i, j, first[i][j], second[i][j])
			}
		}
	}
}

func TestDeriveAll_OverwritesStaleValues(t *testing.T) {
	stale := 42.0
	records := []domain.Treatment{{PVBenefits: 10, PVCosts: 0, NPV: -1, BCR: &stale, ROI: &stale}}

	DeriveAll(records)

	if records[0].NPV != 10 || records[0].BCR != nil || records[0].ROI != nil {
		t.Errorf("stale derived values survived: %+v", records[0])
	}
}

func TestRank_DescendingByNPV(t *testing.T) {
	ranked := Analyze(domain.DemoTreatments())

	want := []string{
		"Precision irrigation upgrade",
		"Drought-resilient seed and soil package",
		"Improved fertiliser program",
		"Control / Current practice",
	}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Name, name)
		}
	}
	if ranked[0].NPV != 300000 || ranked[3].NPV != 0 {
		t.Errorf("unexpected NPVs: first %v last %v", ranked[0].NPV, ranked[3].NPV)
	}
}

func TestRank_StableForTies(t *testing.T) {
	records := []domain.Treatment{
		{ID: 1, Name: "blank A"},
		{ID: 2, Name: "winner", PVBenefits: 10},
		{ID: 3, Name: "blank B"},
		{ID: 4, Name: "tied winner", PVBenefits: 20, PVCosts: 10},
		{ID: 5, Name: "blank C"},
	}
	ranked := Analyze(records)

	wantIDs := []int{2, 4, 1, 3, 5}
	for i, id := range wantIDs {
		if ranked[i].ID != id {
			t.Fatalf("rank order = %v, want %v", ids(ranked), wantIDs)
		}
	}
}

func TestRank_DoesNotReorderInput(t *testing.T) {
	records := []domain.Treatment{{ID: 1, NPV: 1}, {ID: 2, NPV: 5}}
	_ = Rank(records)
	if records[0].ID != 1 || records[1].ID != 2 {
		t.Errorf("input reordered: %v", ids(records))
	}
}

func TestRank_Empty(t *testing.T) {
	if got := Rank(nil); len(got) != 0 {
		t.Errorf("Rank(nil) = %v", got)
	}
}

func snapshot(records []domain.Treatment) [][]float64 {
	out := make([][]float64, len(records))
	for i, r := range records {
		row := []float64{r.NPV, math.NaN(), math.NaN()}
		if r.BCR != nil {
			row[1] = *r.BCR
		}
		if r.ROI != nil {
			row[2] = *r.ROI
		}
		out[i] = row
	}
	return out
}

func ids(records []domain.Treatment) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
