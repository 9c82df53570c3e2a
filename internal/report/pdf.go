package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/emiliopalmerini/mcba/internal/analysis"
	"github.com/emiliopalmerini/mcba/internal/domain"
)

// Page layout constants (mm)
const (
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	marginBottom = 15.0
	pageWidth    = 210.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// pdfColumnWidths matches analysis.TableHeader.
var pdfColumnWidths = []float64{12, 48, 22, 22, 22, 14, 14, 26}

// PDFReport is a printable cost-benefit comparison.
type PDFReport struct {
	Title     string
	Generated time.Time
	Formatter analysis.Formatter
	Ranked    []domain.Treatment

	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewPDFReport prepares a report for an already ranked sequence.
func NewPDFReport(title string, f analysis.Formatter, ranked []domain.Treatment) *PDFReport {
	r := &PDFReport{
		Title:     title,
		Generated: time.Now(),
		Formatter: f,
		Ranked:    ranked,
		pdf:       fpdf.New("P", "mm", "A4", ""),
	}
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetTitle(title, true)
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")
	return r
}

// Write renders the report and writes the PDF document to w.
func (r *PDFReport) Write(w io.Writer) error {
	if len(r.Ranked) == 0 {
		return analysis.ErrNoTreatments
	}

	r.pdf.AddPage()
	r.addTitle()
	r.addTable()
	r.addSummary()
	r.addStats()
	r.addCards()

	if err := r.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (r *PDFReport) addTitle() {
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, r.tr(r.Title), "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", r.Generated.Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)
}

func (r *PDFReport) sectionHeading(text string) {
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, r.tr(text), "", 1, "L", false, 0, "")
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *PDFReport) addTable() {
	r.sectionHeading("Ranking by NPV")

	r.pdf.SetFont("Arial", "B", 8)
	r.pdf.SetFillColor(230, 236, 245)
	r.pdf.SetDrawColor(200, 200, 200)
	for i, h := range analysis.TableHeader {
		r.pdf.CellFormat(pdfColumnWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 8)
	for _, row := range r.Formatter.Rows(r.Ranked) {
		for i, cell := range row.Cells() {
			align := "R"
			if i == 1 || i == 7 {
				align = "L"
			}
			r.pdf.CellFormat(pdfColumnWidths[i], 6, r.tr(truncate(cell, 32)), "1", 0, align, false, 0, "")
		}
		r.pdf.Ln(-1)
	}
	r.pdf.Ln(6)
}

func (r *PDFReport) addSummary() {
	r.sectionHeading("Summary")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.MultiCell(contentWidth, 5, r.tr(r.Formatter.Summarize(r.Ranked)), "", "L", false)
	r.pdf.Ln(4)
}

func (r *PDFReport) addStats() {
	r.sectionHeading("Portfolio")
	r.pdf.SetFont("Arial", "", 10)
	for _, line := range statsLines(r.Formatter, analysis.Stats(r.Ranked)) {
		r.pdf.CellFormat(45, 6, line.Label, "", 0, "L", false, 0, "")
		r.pdf.CellFormat(contentWidth-45, 6, r.tr(line.Value), "", 1, "L", false, 0, "")
	}
	r.pdf.Ln(4)
}

func (r *PDFReport) addCards() {
	r.sectionHeading("Treatments")
	for _, c := range r.Formatter.Cards(r.Ranked) {
		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.SetFillColor(245, 247, 250)
		r.pdf.CellFormat(contentWidth, 7, r.tr(fmt.Sprintf("%s %s - %s", analysis.FormatRank(c.Rank), c.Title, c.Headline)), "1", 1, "L", true, 0, "")

		r.pdf.SetFont("Arial", "", 10)
		for _, f := range c.Figures {
			r.pdf.CellFormat(35, 6, f.Label, "L", 0, "L", false, 0, "")
			r.pdf.CellFormat(contentWidth-35, 6, r.tr(f.Value), "R", 1, "L", false, 0, "")
		}
		if c.Notes != "" {
			r.pdf.MultiCell(contentWidth, 6, r.tr("Notes: "+c.Notes), "LR", "L", false)
		}
		r.pdf.CellFormat(contentWidth, 1, "", "LRB", 1, "C", false, 0, "")
		r.pdf.Ln(3)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
