package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mcba/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web interface",
	Long: `Start the local web interface and JSON API.

The server starts with whatever --input or --demo loaded. Treatments can then
be added, edited and removed from the browser.

Examples:
  mcba serve                 # Start on MCBA_HTTP_PORT (default 8080)
  mcba serve --port 3000     # Start on port 3000
  mcba serve --demo          # Start with the demo dataset`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default: MCBA_HTTP_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	port := servePort
	if port == 0 {
		port = app.Config.HTTPPort
	}

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(cmd.ErrOrStderr(), "\nShutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	server := web.NewServer(app.Store, port, app.Format, app.Exporter, app.Log)
	return server.Start(ctx)
}
