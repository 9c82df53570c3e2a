package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mcba/internal/analysis"
	"github.com/emiliopalmerini/mcba/internal/domain"
	"github.com/emiliopalmerini/mcba/internal/report"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Show treatments ranked by NPV",
	Long: `Show treatments ranked by net present value, highest first.

Treatments with equal NPV keep the order they were entered in.

Examples:
  mcba rank --demo                    # Rank the demo dataset
  mcba rank -i treatments.yaml        # Rank a YAML dataset
  mcba rank -i export.csv --stats     # Include portfolio statistics`,
	RunE: runRank,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Rank and summarise the demo dataset",
	Long: `Load the four built-in demo treatments and print the ranking, the
summary and the portfolio statistics.`,
	RunE: runDemo,
}

var rankStats bool

func init() {
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(demoCmd)

	rankCmd.Flags().BoolVar(&rankStats, "stats", false, "Print portfolio statistics after the table")
}

func runRank(cmd *cobra.Command, args []string) error {
	_, ranked := app.Analyze(cmd.Context(), "rank")
	out := cmd.OutOrStdout()

	printRanking(out, app.Format, ranked)
	if rankStats && len(ranked) > 0 {
		fmt.Fprintln(out)
		report.WriteStats(out, app.Format, analysis.Stats(ranked))
	}
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	app.Store.ReplaceAll(domain.DemoTreatments())
	_, ranked := app.Analyze(cmd.Context(), "demo")
	out := cmd.OutOrStdout()

	printRanking(out, app.Format, ranked)
	fmt.Fprintln(out)
	fmt.Fprintln(out, app.Format.Summarize(ranked))
	fmt.Fprintln(out)
	report.WriteStats(out, app.Format, analysis.Stats(ranked))
	return nil
}

func printRanking(out io.Writer, f analysis.Formatter, ranked []domain.Treatment) {
	if len(ranked) == 0 {
		fmt.Fprintln(out, analysis.EmptySummaryPrompt)
		return
	}
	report.WriteTable(out, f.Rows(ranked))
}
