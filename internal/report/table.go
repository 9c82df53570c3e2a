// Package report renders analysis projections for terminals and print.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/emiliopalmerini/mcba/internal/analysis"
)

// WriteTable renders ranked rows as a bordered text table.
func WriteTable(w io.Writer, rows []analysis.Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(analysis.TableHeader)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, r := range rows {
		table.Append(r.Cells())
	}
	table.Render()
}

// WriteCards renders one block of text per card.
func WriteCards(w io.Writer, cards []analysis.Card) {
	for i, c := range cards {
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := fmt.Sprintf("%s %s", analysis.FormatRank(c.Rank), c.Title)
		fmt.Fprintf(w, "  %s\n", title)
		fmt.Fprintf(w, "  %s\n", strings.Repeat("-", len([]rune(title))))
		fmt.Fprintf(w, "  %s\n", c.Headline)
		for _, f := range c.Figures {
			fmt.Fprintf(w, "  %-12s %s\n", f.Label+":", f.Value)
		}
		if c.Notes != "" {
			fmt.Fprintf(w, "  %-12s %s\n", "Notes:", c.Notes)
		}
	}
}

// WriteStats prints portfolio statistics in the same two-column layout
// the cards use.
func WriteStats(w io.Writer, f analysis.Formatter, ps analysis.PortfolioStats) {
	fmt.Fprintf(w, "  Portfolio\n")
	fmt.Fprintf(w, "  ---------\n")
	for _, line := range statsLines(f, ps) {
		fmt.Fprintf(w, "  %-16s %s\n", line.Label+":", line.Value)
	}
}

func statsLines(f analysis.Formatter, ps analysis.PortfolioStats) []analysis.Figure {
	return []analysis.Figure{
		{Label: "Treatments", Value: fmt.Sprintf("%d", ps.Count)},
		{Label: "Positive NPV", Value: fmt.Sprintf("%d", ps.Positive)},
		{Label: "Total benefits", Value: f.Money(ps.TotalBenefits)},
		{Label: "Total costs", Value: f.Money(ps.TotalCosts)},
		{Label: "Mean NPV", Value: f.Money(ps.MeanNPV)},
		{Label: "Median NPV", Value: f.Money(ps.MedianNPV)},
		{Label: "NPV std dev", Value: f.Money(ps.StdDevNPV)},
	}
}
