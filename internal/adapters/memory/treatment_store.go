package memory

import (
	"strings"

	"github.com/emiliopalmerini/mcba/internal/domain"
)

// TreatmentStore is an in-process ports.TreatmentStore. It is not safe for
// concurrent use; callers sharing one across goroutines must lock around it.
type TreatmentStore struct {
	records []domain.Treatment
	nextID  int
}

// NewTreatmentStore creates an empty store whose first id is 1.
func NewTreatmentStore() *TreatmentStore {
	return &TreatmentStore{nextID: 1}
}

func (s *TreatmentStore) Add(in domain.TreatmentInput) int {
	id := s.nextID
	s.nextID++

	t := domain.Treatment{ID: id}
	t.Merge(in)
	defaultName(&t)
	s.records = append(s.records, t)
	return id
}

func (s *TreatmentStore) Remove(id int) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
}

func (s *TreatmentStore) Update(id int, in domain.TreatmentInput) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.records[i].Merge(in)
	defaultName(&s.records[i])
}

func (s *TreatmentStore) Clear() {
	s.records = nil
	s.nextID = 1
}

func (s *TreatmentStore) ReplaceAll(records []domain.Treatment) {
	s.records = make([]domain.Treatment, 0, len(records))
	maxID := 0
	for _, r := range records {
		t := r.Clone()
		defaultName(&t)
		t.Apply(t.Metrics())
		s.records = append(s.records, t)
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	s.nextID = maxID + 1
}

func (s *TreatmentStore) List() []domain.Treatment {
	out := make([]domain.Treatment, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

func (s *TreatmentStore) Get(id int) (domain.Treatment, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.Treatment{}, false
	}
	return s.records[i].Clone(), true
}

func (s *TreatmentStore) Len() int {
	return len(s.records)
}

// defaultName names a blank or whitespace-only treatment after its id.
func defaultName(t *domain.Treatment) {
	if strings.TrimSpace(t.Name) == "" {
		t.Name = domain.DefaultName(t.ID)
	}
}

func (s *TreatmentStore) index(id int) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
