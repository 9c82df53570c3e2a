package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mcba",
	Short: "Compare treatments by net present value",
	Long: `mcba compares candidate treatments from their present-value benefits and costs.

It derives net present value (NPV), benefit-cost ratio (BCR) and return on
investment (ROI) for each treatment, ranks them by NPV, and renders the ranking
as a table, summary cards, a plain-language summary, CSV or a PDF report.

Treatments come from a dataset file (--input), the built-in demo (--demo),
or are entered interactively with 'mcba session'.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: teardownApp,
}

// Flags
var (
	inputPath string
	useDemo   bool
	envFile   string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Treatment dataset (.yaml, .yml or .csv)")
	rootCmd.PersistentFlags().BoolVar(&useDemo, "demo", false, "Use the built-in demo dataset")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file with MCBA_* settings")
}
