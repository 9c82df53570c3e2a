package analysis

import (
	"fmt"
	"strings"

	"github.com/emiliopalmerini/mcba/internal/domain"
)

// EmptySummaryPrompt is returned by Summarize when there is nothing to rank.
const EmptySummaryPrompt = "Add at least one treatment with PV benefits and PV costs to see a summary."

// narrativeNA stands in for an absent ratio inside narrative prose only.
// Tables, cards and CSV render an absent ratio as an empty string.
const narrativeNA = "n/a"

// Summarize describes a ranked sequence in plain language.
func Summarize(ranked []domain.Treatment) string {
	return DefaultFormatter.Summarize(ranked)
}

// Summarize names the highest-NPV treatment and, when there is more than
// one, contrasts it with the lowest-NPV treatment.
func (f Formatter) Summarize(ranked []domain.Treatment) string {
	if len(ranked) == 0 {
		return EmptySummaryPrompt
	}

	top := ranked[0]
	var b strings.Builder
	b.WriteString(f.describe(top, "highest"))

	if len(ranked) == 1 {
		return b.String()
	}

	bottom := ranked[len(ranked)-1]
	b.WriteString("\n\n")
	b.WriteString(f.describe(bottom, "lowest"))
	fmt.Fprintf(&b, " The NPV gap between %s and %s is %s.",
		top.Name, bottom.Name, f.Money(top.NPV-bottom.NPV))
	fmt.Fprintf(&b, " Their BCRs are %s and %s respectively.",
		narrativeRatio(top.BCR), narrativeRatio(bottom.BCR))

	return b.String()
}

func (f Formatter) describe(t domain.Treatment, rank string) string {
	s := fmt.Sprintf("%s has the %s NPV at %s, from PV benefits of %s against PV costs of %s",
		t.Name, rank, f.Money(t.NPV), f.Money(t.PVBenefits), f.Money(t.PVCosts))
	if t.BCR != nil {
		s += fmt.Sprintf(", giving a BCR of %s", FormatRatio(t.BCR))
	}
	return s + "."
}

func narrativeRatio(v *float64) string {
	if s := FormatRatio(v); s != "" {
		return s
	}
	return narrativeNA
}
