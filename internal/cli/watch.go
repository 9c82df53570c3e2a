package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mcba/internal/adapters/dataset"
	"github.com/emiliopalmerini/mcba/internal/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-rank a dataset file every time it changes",
	Long: `Print the ranking and summary for --input, then print them again every
time the file is saved. A save that fails to parse is reported and the
previous data is kept.

Examples:
  mcba watch -i treatments.yaml`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if inputPath == "" {
		return fmt.Errorf("watch needs a dataset file: pass --input")
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	render := func(source string) {
		_, ranked := app.Analyze(ctx, source)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "== %s (%s) ==\n", inputPath, time.Now().Format(time.TimeOnly))
		printRanking(out, app.Format, ranked)
		fmt.Fprintln(out)
		fmt.Fprintln(out, app.Format.Summarize(ranked))
		fmt.Fprintln(out)
	}

	render("watch")
	return dataset.Watch(ctx, app.Log, inputPath, func(inputs []domain.TreatmentInput) {
		dataset.Fill(app.Store, inputs)
		render("watch")
	})
}
