package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mcba/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Describe the best and worst treatments in plain language",
	Long: `Print a short narrative naming the treatment with the highest NPV and,
when there is more than one, the treatment with the lowest NPV.

Examples:
  mcba summary --demo
  mcba summary -i treatments.yaml`,
	RunE: runSummary,
}

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Print a summary card for each treatment",
	Long: `Print one card per treatment in ranked order with its NPV, PV benefits,
PV costs, BCR, ROI and notes.`,
	RunE: runCards,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(cardsCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	_, ranked := app.Analyze(cmd.Context(), "summary")
	fmt.Fprintln(cmd.OutOrStdout(), app.Format.Summarize(ranked))
	return nil
}

func runCards(cmd *cobra.Command, args []string) error {
	_, ranked := app.Analyze(cmd.Context(), "cards")
	if len(ranked) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No treatments to show.")
		return nil
	}
	report.WriteCards(cmd.OutOrStdout(), app.Format.Cards(ranked))
	return nil
}
