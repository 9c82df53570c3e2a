package memory

import (
	"testing"

	"github.com/emiliopalmerini/mcba/internal/domain"
)

func TestTreatmentStore_AddDefaults(t *testing.T) {
	s := NewTreatmentStore()

	id := s.Add(domain.TreatmentInput{})
	if id != 1 {
		t.Fatalf("first id = %d, want 1", id)
	}

	got, ok := s.Get(id)
	if !ok {
		t.Fatal("added treatment not found")
	}
	if got.Name != "Treatment 1" {
		t.Errorf("Name = %q, want default", got.Name)
	}
	if got.PVBenefits != 0 || got.PVCosts != 0 || got.NPV != 0 {
		t.Errorf("numeric fields should default to zero: %+v", got)
	}
	if got.BCR != nil || got.ROI != nil {
		t.Error("ratios should be absent for zero costs")
	}
}

func TestTreatmentStore_BlankNameGetsDefault(t *testing.T) {
	s := NewTreatmentStore()
	s.Add(domain.TreatmentInput{})
	id := s.Add(domain.NewInput("   ", 10, 5, ""))

	got, _ := s.Get(id)
	if got.Name != "Treatment 2" {
		t.Errorf("Name = %q, want %q", got.Name, "Treatment 2")
	}
}

func TestTreatmentStore_ListPreservesInsertionOrder(t *testing.T) {
	s := NewTreatmentStore()
	s.Add(domain.NewInput("low", 0, 10, ""))
	s.Add(domain.NewInput("high", 100, 10, ""))
	s.Add(domain.NewInput("mid", 50, 10, ""))

	names := []string{}
	for _, r := range s.List() {
		names = append(names, r.Name)
	}
	want := []string{"low", "high", "mid"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("List order = %v, want %v", names, want)
		}
	}
}

func TestTreatmentStore_RemoveNeverReusesIDs(t *testing.T) {
	s := NewTreatmentStore()
	a := s.Add(domain.NewInput("a", 100, 50, ""))
	b := s.Add(domain.NewInput("b", 300, 100, ""))
	c := s.Add(domain.NewInput("c", 10, 20, ""))

	before, _ := s.Get(a)
	s.Remove(c)
	s.Remove(b)

	after, ok := s.Get(a)
	if !ok || after.ID != a || after.NPV != before.NPV || *after.BCR != *before.BCR {
		t.Errorf("remaining record changed after removal: before %+v after %+v", before, after)
	}

	next := s.Add(domain.TreatmentInput{})
	if next != 4 {
		t.Errorf("next id after removal = %d, want 4", next)
	}
}

func TestTreatmentStore_UnknownIDIsNoOp(t *testing.T) {
	s := NewTreatmentStore()
	s.Add(domain.NewInput("only", 1, 1, ""))

	name := "ghost"
	s.Update(42, domain.TreatmentInput{Name: &name})
	s.Remove(42)

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if got := s.List()[0].Name; got != "only" {
		t.Errorf("Name = %q, want only", got)
	}
}

func TestTreatmentStore_UpdateMergesAndRederives(t *testing.T) {
	s := NewTreatmentStore()
	id := s.Add(domain.NewInput("x", 100, 0, "n"))

	costs := 50.0
	s.Update(id, domain.TreatmentInput{PVCosts: &costs})

	got, _ := s.Get(id)
	if got.Name != "x" || got.Notes != "n" || got.PVBenefits != 100 {
		t.Errorf("Update clobbered unset fields: %+v", got)
	}
	if got.NPV != 50 {
		t.Errorf("NPV = %v, want 50", got.NPV)
	}
	if got.BCR == nil || *got.BCR != 2 {
		t.Errorf("BCR = %v, want 2", got.BCR)
	}
}

func TestTreatmentStore_UpdateBlankNameGetsDefault(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "whitespace", in: "  \t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTreatmentStore()
			id := s.Add(domain.NewInput("Irrigation", 100, 50, ""))

			blank := tt.in
			s.Update(id, domain.TreatmentInput{Name: &blank})

			got, _ := s.Get(id)
			if got.Name != "Treatment 1" {
				t.Errorf("Name = %q, want %q", got.Name, "Treatment 1")
			}
			if got.NPV != 50 {
				t.Errorf("NPV = %v, want 50", got.NPV)
			}
		})
	}
}

func TestTreatmentStore_ClearResetsIDs(t *testing.T) {
	s := NewTreatmentStore()
	s.Add(domain.TreatmentInput{})
	s.Add(domain.TreatmentInput{})
	s.Clear()

	if s.Len() != 0 {
		t.Fatalf("Len = %d after Clear", s.Len())
	}
	if id := s.Add(domain.TreatmentInput{}); id != 1 {
		t.Errorf("id after Clear = %d, want 1", id)
	}
}

func TestTreatmentStore_ReplaceAll(t *testing.T) {
	s := NewTreatmentStore()
	s.Add(domain.TreatmentInput{})

	s.ReplaceAll(domain.DemoTreatments())

	if s.Len() != 4 {
		t.Fatalf("Len = %d, want 4", s.Len())
	}
	if id := s.Add(domain.TreatmentInput{}); id != 5 {
		t.Errorf("id after ReplaceAll = %d, want 5", id)
	}
}

func TestTreatmentStore_ReplaceAllUsesMaxID(t *testing.T) {
	s := NewTreatmentStore()
	s.ReplaceAll([]domain.Treatment{{ID: 9, Name: "nine"}, {ID: 3}})

	got, _ := s.Get(3)
	if got.Name != "Treatment 3" {
		t.Errorf("Name = %q, want default", got.Name)
	}
	if id := s.Add(domain.TreatmentInput{}); id != 10 {
		t.Errorf("next id = %d, want 10", id)
	}
}

func TestTreatmentStore_ListReturnsCopies(t *testing.T) {
	s := NewTreatmentStore()
	s.Add(domain.NewInput("a", 100, 50, ""))

	list := s.List()
	list[0].Name = "mutated"
	*list[0].BCR = 0

	got := s.List()[0]
	if got.Name != "a" || *got.BCR != 2 {
		t.Errorf("store state changed through List result: %+v", got)
	}
}
