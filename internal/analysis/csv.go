package analysis

import (
	"errors"
	"strconv"
	"strings"

	"github.com/emiliopalmerini/mcba/internal/domain"
)

// ErrNoTreatments is returned when an export is attempted on an empty set.
var ErrNoTreatments = errors.New("add at least one treatment before exporting")

// CSVHeader is the first line of every export.
var CSVHeader = []string{"Treatment", "PV benefits", "PV costs", "NPV", "BCR", "ROI", "Notes"}

// ToCSV renders records in the order given, which callers keep as insertion
// order. Name and notes are always quoted; absent ratios are empty fields.
func ToCSV(records []domain.Treatment) (string, error) {
	if len(records) == 0 {
		return "", ErrNoTreatments
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(CSVHeader, ","))
	for _, r := range records {
		lines = append(lines, strings.Join([]string{
			quote(r.Name),
			rawNumber(r.PVBenefits),
			rawNumber(r.PVCosts),
			rawNumber(r.NPV),
			rawRatio(r.BCR),
			rawRatio(r.ROI),
			quote(r.Notes),
		}, ","))
	}
	return strings.Join(lines, "\n"), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func rawNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rawRatio(v *float64) string {
	if v == nil {
		return ""
	}
	return rawNumber(*v)
}
