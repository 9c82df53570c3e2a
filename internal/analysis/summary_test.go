package analysis

import (
	"strings"
	"testing"

	"github.com/emiliopalmerini/mcba/internal/domain"
)

func TestSummarize_Empty(t *testing.T) {
	if got := Summarize(nil); got != EmptySummaryPrompt {
		t.Errorf("Summarize(nil) = %q, want prompt", got)
	}
}

func TestSummarize_SingleRecord(t *testing.T) {
	ranked := Analyze([]domain.Treatment{{ID: 1, Name: "Only", PVBenefits: 100, PVCosts: 50}})

	got := Summarize(ranked)
	want := "Only has the highest NPV at $50, from PV benefits of $100 against PV costs of $50, giving a BCR of 2.00."
	if got != want {
		t.Errorf("Summarize =\n%q\nwant\n%q", got, want)
	}
	if strings.Contains(got, "lowest") {
		t.Error("single record summary should not contain a lowest-NPV paragraph")
	}
}

func TestSummarize_OmitsAbsentBCRClause(t *testing.T) {
	ranked := Analyze([]domain.Treatment{{ID: 1, Name: "Free", PVBenefits: 500}})

	got := Summarize(ranked)
	if strings.Contains(got, "BCR") {
		t.Errorf("BCR clause should be omitted when BCR is absent: %q", got)
	}
	if !strings.HasSuffix(got, "PV costs of $0.") {
		t.Errorf("unexpected ending: %q", got)
	}
}

func TestSummarize_TwoRecordsWithZeroCost(t *testing.T) {
	ranked := Analyze([]domain.Treatment{
		{ID: 1, Name: "Baseline"},
		{ID: 2, Name: "Upgrade", PVBenefits: 300, PVCosts: 100},
	})

	got := Summarize(ranked)
	paragraphs := strings.Split(got, "\n\n")
	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %q", len(paragraphs), got)
	}
	if !strings.HasPrefix(paragraphs[0], "Upgrade has the highest NPV at $200") {
		t.Errorf("first paragraph = %q", paragraphs[0])
	}
	if !strings.Contains(paragraphs[0], "giving a BCR of 3.00") {
		t.Errorf("first paragraph missing BCR: %q", paragraphs[0])
	}
	if !strings.HasPrefix(paragraphs[1], "Baseline has the lowest NPV at $0, from PV benefits of $0 against PV costs of $0.") {
		t.Errorf("second paragraph = %q", paragraphs[1])
	}
	if !strings.Contains(paragraphs[1], "Their BCRs are 3.00 and n/a respectively.") {
		t.Errorf("narrative should use n/a for the absent ratio: %q", paragraphs[1])
	}
}

func TestSummarize_Demo(t *testing.T) {
	got := Summarize(Analyze(domain.DemoTreatments()))

	want := "Precision irrigation upgrade has the highest NPV at $300,000, from PV benefits of $620,000 against PV costs of $320,000, giving a BCR of 1.94." +
		"\n\n" +
		"Control / Current practice has the lowest NPV at $0, from PV benefits of $0 against PV costs of $0." +
		" The NPV gap between Precision irrigation upgrade and Control / Current practice is $300,000." +
		" Their BCRs are 1.94 and n/a respectively."
	if got != want {
		t.Errorf("Summarize(demo) =\n%s\nwant\n%s", got, want)
	}
}

func TestSummarize_UsesStoredBCR(t *testing.T) {
	// A stored value that disagrees with the inputs shows the narrative does
	// not re-derive the ratio.
	bcr := 9.99
	ranked := []domain.Treatment{{Name: "X", PVBenefits: 1, PVCosts: 1, BCR: &bcr}}

	if got := Summarize(ranked); !strings.Contains(got, "BCR of 9.99") {
		t.Errorf("Summarize should report the stored BCR: %q", got)
	}
}

func TestFormatter_Summarize_Currency(t *testing.T) {
	f := Formatter{Currency: "£"}
	got := f.Summarize(Analyze([]domain.Treatment{{Name: "A", PVBenefits: 1500, PVCosts: 2500}}))
	if !strings.Contains(got, "NPV at -£1,000") {
		t.Errorf("expected negative pound formatting, got %q", got)
	}
}
