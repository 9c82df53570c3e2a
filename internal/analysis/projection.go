package analysis

import "github.com/emiliopalmerini/mcba/internal/domain"

// Row is one line of the ranked results table, already formatted for display.
type Row struct {
	Rank       int
	ID         int
	Name       string
	PVBenefits string
	PVCosts    string
	NPV        string
	BCR        string
	ROI        string
	Notes      string
}

// Card is the per-treatment summary shown beside the table.
type Card struct {
	Rank     int
	ID       int
	Title    string
	Headline string
	Figures  []Figure
	Notes    string
}

// Figure is a labelled value on a Card.
type Figure struct {
	Label string
	Value string
}

// TableHeader labels the columns of Row in display order.
var TableHeader = []string{"Rank", "Treatment", "PV benefits", "PV costs", "NPV", "BCR", "ROI", "Notes"}

// Rows formats a ranked sequence for tabular display.
func (f Formatter) Rows(ranked []domain.Treatment) []Row {
	rows := make([]Row, 0, len(ranked))
	for i, t := range ranked {
		rows = append(rows, Row{
			Rank:       i + 1,
			ID:         t.ID,
			Name:       t.Name,
			PVBenefits: FormatMoney(t.PVBenefits),
			PVCosts:    FormatMoney(t.PVCosts),
			NPV:        FormatMoney(t.NPV),
			BCR:        FormatRatio(t.BCR),
			ROI:        FormatRatio(t.ROI),
			Notes:      t.Notes,
		})
	}
	return rows
}

// Cells returns the row as strings in TableHeader order.
func (r Row) Cells() []string {
	return []string{
		FormatRank(r.Rank), r.Name, r.PVBenefits, r.PVCosts, r.NPV, r.BCR, r.ROI, r.Notes,
	}
}

// Cards formats a ranked sequence as per-treatment summary cards.
func (f Formatter) Cards(ranked []domain.Treatment) []Card {
	cards := make([]Card, 0, len(ranked))
	for i, t := range ranked {
		cards = append(cards, Card{
			Rank:     i + 1,
			ID:       t.ID,
			Title:    t.Name,
			Headline: "NPV " + f.Money(t.NPV),
			Figures: []Figure{
				{Label: "PV benefits", Value: f.Money(t.PVBenefits)},
				{Label: "PV costs", Value: f.Money(t.PVCosts)},
				{Label: "BCR", Value: FormatRatio(t.BCR)},
				{Label: "ROI", Value: FormatRatio(t.ROI)},
			},
			Notes: t.Notes,
		})
	}
	return cards
}

// FormatRank renders a 1-based rank as "#1".
func FormatRank(rank int) string {
	return printer.Sprintf("#%d", rank)
}
