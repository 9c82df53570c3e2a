package ports

import "github.com/emiliopalmerini/mcba/internal/domain"

// TreatmentStore holds the ordered collection of treatments for one session.
// Operations on unknown ids are no-ops.
type TreatmentStore interface {
	// Add appends a treatment and returns its newly assigned id.
	Add(in domain.TreatmentInput) int
	Remove(id int)
	Update(id int, in domain.TreatmentInput)
	// Clear empties the store and restarts id assignment at 1.
	Clear()
	// ReplaceAll bulk-loads records; the next id is one past the largest supplied.
	ReplaceAll(records []domain.Treatment)
	// List returns copies of the records in insertion order.
	List() []domain.Treatment
	Get(id int) (domain.Treatment, bool)
	Len() int
}
