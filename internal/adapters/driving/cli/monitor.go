package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var monitorBackfill bool

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run the match monitor",
}

var monitorRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Scan for new reports until interrupted",
	Long: `Runs one immediate scan, then rescans on a fixed interval.
Each newly filed report is matched against the open corpus; unseen
pairings are persisted and the report owner is notified once per
report. Interrupt with Ctrl-C to stop.`,
	RunE: runMonitor,
}

func init() {
	monitorRunCmd.Flags().BoolVar(&monitorBackfill, "backfill", false, "process all existing open reports first")
	monitorCmd.AddCommand(monitorRunCmd)
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if monitorBackfill {
		if err := monitorService.ProcessAllExisting(ctx); err != nil {
			return fmt.Errorf("backfill failed: %w", err)
		}
	}

	if err := monitorService.Start(ctx); err != nil {
		return fmt.Errorf("starting monitor: %w", err)
	}

	status := monitorService.Status()
	cmd.Printf("Monitoring (interval %s, %d reports processed). Ctrl-C to stop.\n",
		settings.TickInterval(), status.ProcessedCount)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}

	return monitorService.Stop()
}
