package templates

import "github.com/emiliopalmerini/mcba/internal/analysis"

// PageView is everything the treatment page renders.
type PageView struct {
	Title   string
	Notice  string
	Rows    []analysis.Row
	Cards   []analysis.Card
	Summary string
	Stats   []analysis.Figure
	// Inputs holds the raw editable values keyed by treatment id.
	Inputs map[int]InputView
}

// InputView is the raw (unformatted) state of one treatment's form fields.
type InputView struct {
	Name       string
	PVBenefits string
	PVCosts    string
	Notes      string
}
