package analysis

import (
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/emiliopalmerini/mcba/internal/domain"
)

func TestToCSV_Empty(t *testing.T) {
	out, err := ToCSV(nil)
	if !errors.Is(err, ErrNoTreatments) {
		t.Fatalf("err = %v, want ErrNoTreatments", err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestToCSV_ShapeAndOrder(t *testing.T) {
	records := domain.DemoTreatments()
	DeriveAll(records)

	out, err := ToCSV(records)
	if err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != len(records)+1 {
		t.Fatalf("got %d lines, want %d", len(lines), len(records)+1)
	}
	if lines[0] != "Treatment,PV benefits,PV costs,NPV,BCR,ROI,Notes" {
		t.Errorf("header = %q", lines[0])
	}

	parsed, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	for i, row := range parsed {
		if len(row) != 7 {
			t.Errorf("line %d has %d fields, want 7", i, len(row))
		}
	}

	// Insertion order, not ranked order.
	for i, r := range records {
		if parsed[i+1][0] != r.Name {
			t.Errorf("row %d name = %q, want %q", i+1, parsed[i+1][0], r.Name)
		}
	}
}

func TestToCSV_RawNumbersAndAbsentRatios(t *testing.T) {
	records := domain.DemoTreatments()
	DeriveAll(records)

	out, _ := ToCSV(records)
	lines := strings.Split(out, "\n")

	if lines[1] != `"Control / Current practice",0,0,0,,,""` {
		t.Errorf("control row = %q", lines[1])
	}

	bcr := strconv.FormatFloat(480000.0/260000.0, 'f', -1, 64)
	roi := strconv.FormatFloat(220000.0/260000.0, 'f', -1, 64)
	want := `"Improved fertiliser program",480000,260000,220000,` + bcr + "," + roi + `,""`
	if lines[2] != want {
		t.Errorf("fertiliser row = %q, want %q", lines[2], want)
	}
}

func TestToCSV_QuoteEscaping(t *testing.T) {
	records := []domain.Treatment{{
		ID:         1,
		Name:       `Seed "Gold", v2`,
		PVBenefits: 1.5,
		PVCosts:    0.5,
		Notes:      `said "fine"`,
	}}
	DeriveAll(records)

	out, err := ToCSV(records)
	if err != nil {
		t.Fatal(err)
	}
	line := strings.Split(out, "\n")[1]
	if !strings.HasPrefix(line, `"Seed ""Gold"", v2",1.5,0.5,1,3,2,`) {
		t.Errorf("row = %q", line)
	}
	if !strings.HasSuffix(line, `"said ""fine"""`) {
		t.Errorf("notes not escaped: %q", line)
	}

	parsed, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if parsed[1][0] != records[0].Name || parsed[1][6] != records[0].Notes {
		t.Errorf("round trip mismatch: %v", parsed[1])
	}
}
