package domain

import "fmt"

// Treatment is one candidate investment or practice option being compared.
// NPV, BCR and ROI are derived from PVBenefits and PVCosts and are only
// ever written through Derive/Apply.
type Treatment struct {
	ID         int
	Name       string
	PVBenefits float64
	PVCosts    float64
	Notes      string

	NPV float64
	BCR *float64 // nil when PVCosts <= 0
	ROI *float64 // nil when PVCosts <= 0
}

// TreatmentInput is a partial set of user-editable fields. Nil means "not provided".
type TreatmentInput struct {
	Name       *string
	PVBenefits *float64
	PVCosts    *float64
	Notes      *string
}

// Metrics holds the values derived from a treatment's present values.
type Metrics struct {
	NPV float64
	BCR *float64
	ROI *float64
}

// DefaultName is the label given to a treatment left without a name.
func DefaultName(id int) string {
	return fmt.Sprintf("Treatment %d", id)
}

// Derive computes NPV, BCR and ROI. The ratios are nil when there is no
// positive cost base.
func Derive(pvBenefits, pvCosts float64) Metrics {
	m := Metrics{NPV: pvBenefits - pvCosts}
	if pvCosts > 0 {
		bcr := pvBenefits / pvCosts
		roi := m.NPV / pvCosts
		m.BCR = &bcr
		m.ROI = &roi
	}
	return m
}

// Metrics returns the derived values for the treatment's current inputs.
func (t *Treatment) Metrics() Metrics {
	return Derive(t.PVBenefits, t.PVCosts)
}

// Apply overwrites the derived fields with m.
func (t *Treatment) Apply(m Metrics) {
	t.NPV = m.NPV
	t.BCR = m.BCR
	t.ROI = m.ROI
}

// Merge copies every provided field of in onto t and re-derives the metrics.
func (t *Treatment) Merge(in TreatmentInput) {
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.PVBenefits != nil {
		t.PVBenefits = *in.PVBenefits
	}
	if in.PVCosts != nil {
		t.PVCosts = *in.PVCosts
	}
	if in.Notes != nil {
		t.Notes = *in.Notes
	}
	t.Apply(t.Metrics())
}

// Clone returns a copy that shares no pointers with t.
func (t Treatment) Clone() Treatment {
	if t.BCR != nil {
		bcr := *t.BCR
		t.BCR = &bcr
	}
	if t.ROI != nil {
		roi := *t.ROI
		t.ROI = &roi
	}
	return t
}

// NewInput builds a fully populated TreatmentInput.
func NewInput(name string, pvBenefits, pvCosts float64, notes string) TreatmentInput {
	return TreatmentInput{
		Name:       &name,
		PVBenefits: &pvBenefits,
		PVCosts:    &pvCosts,
		Notes:      &notes,
	}
}
