// Package cli wires the cobra command tree to the matching engine.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/reunite-labs/reunite/internal/adapters/driven/config/file"
	"github.com/reunite-labs/reunite/internal/adapters/driven/notify/logging"
	"github.com/reunite-labs/reunite/internal/adapters/driven/storage/sqlite"
	"github.com/reunite-labs/reunite/internal/core/ports/driven"
	"github.com/reunite-labs/reunite/internal/core/ports/driving"
	"github.com/reunite-labs/reunite/internal/core/services"
	"github.com/reunite-labs/reunite/internal/logger"
	"github.com/reunite-labs/reunite/internal/matching"
)

// Services wired by bootstrap and consumed by the commands.
var (
	reportStore     driven.ReportStore
	matchStore      driven.MatchStore
	corpusService   driving.CorpusService
	realtimeService driving.MatcherService
	monitorService  driving.MonitorService
	settings        configfile.Settings
)

var (
	flagVerbose bool
	flagDataDir string
	flagConfig  string

	sqliteStore *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "reunite",
	Short: "Match lost item reports with found item reports",
	Long: `Reunite pairs lost and found item reports using multi-signal
similarity scoring over text, category, location, and date.`,
	SilenceUsage:      true,
	PersistentPreRunE: bootstrap,
	PersistentPostRunE: func(*cobra.Command, []string) error {
		if sqliteStore != nil {
			return sqliteStore.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.reunite/data)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.reunite/config.toml)")
}

// bootstrap builds the store, pipeline, and services before any
// command runs.
func bootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	var err error
	settings, err = configfile.LoadSettings(flagConfig)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	tables, err := settings.LoadTables()
	if err != nil {
		return fmt.Errorf("loading tables: %w", err)
	}
	pipeline := matching.NewPipeline(tables)

	if settings.TablesPath != "" {
		if err := configfile.WatchTables(cmd.Context(), settings.TablesPath, pipeline.Reload); err != nil {
			logger.Warn("Tables watch disabled: %v", err)
		}
	}

	sqliteStore, err = sqlite.NewStore(flagDataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	reportStore = sqliteStore.ReportStore()
	matchStore = sqliteStore.MatchStore()

	corpusService = services.NewCorpusService(reportStore, pipeline)
	realtimeService = services.NewRealTimeService(reportStore, pipeline)
	monitorService = services.NewMonitor(
		reportStore, matchStore, logging.New(), realtimeService,
		services.WithTickInterval(settings.TickInterval()),
		services.WithMatchConfig(settings.MatchConfig()),
	)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}
