package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mcba/internal/analysis"
	"github.com/emiliopalmerini/mcba/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export treatments to CSV",
	Long: `Export treatments and their derived metrics as CSV.

Rows are written in the order treatments were entered, not ranked order.
Exporting with no treatments is refused.

Examples:
  mcba export --demo                          # CSV to stdout
  mcba export -i treatments.yaml -o out.csv   # CSV to a file`,
	RunE: runExport,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a printable PDF report",
	Long: `Write a PDF with the ranked table, the summary, portfolio statistics and
a card per treatment.

Examples:
  mcba report --demo -o demo.pdf
  mcba report -i treatments.yaml -o report.pdf --title "Farm trial 2026"`,
	RunE: runReport,
}

// Flags
var (
	exportOutput string
	reportOutput string
	reportTitle  string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "report.pdf", "Output PDF file")
	reportCmd.Flags().StringVar(&reportTitle, "title", "Treatment cost-benefit comparison", "Report title")
}

func runExport(cmd *cobra.Command, args []string) error {
	records, _ := app.Analyze(cmd.Context(), "export")

	out, err := analysis.ToCSV(records)
	if err != nil {
		return fmt.Errorf("cannot export: %w", err)
	}

	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(exportOutput, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d treatments to %s\n", len(records), exportOutput)
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	_, ranked := app.Analyze(cmd.Context(), "report")
	if len(ranked) == 0 {
		return fmt.Errorf("cannot write report: %w", analysis.ErrNoTreatments)
	}

	f, err := os.Create(reportOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := report.NewPDFReport(reportTitle, app.Format, ranked).Write(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", reportOutput, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote report for %d treatments to %s\n", len(ranked), reportOutput)
	return nil
}
