package cmd

import (
	"fmt"
	"os"

	"fcab/internal/cli"
	"fcab/internal/config"
	"fcab/internal/ledger"
	"fcab/internal/model"
	"fcab/internal/pipeline"
	"fcab/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagData  string
	flagBus   string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "fcab",
	Short: "Fleet fuel & expense dashboard",
	Long:  "Track bus refuels, expense claims, and vendor invoices; watch mileage and spend.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagData, "data", "d", "", "Slot database path (default: config, then XDG data dir)")
	rootCmd.PersistentFlags().StringVarP(&flagBus, "bus", "b", "", "Filter to one bus (substring match)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings on stderr")
}

// openLedger is the shared load path used by every command: config, then the
// slot store, then the ledger (which seeds sample fuel logs on first run).
// The caller must Close the returned store.
func openLedger() (*ledger.Ledger, *store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("load config: %w", err)
	}
	if cfg.Fleet.Currency != "" {
		cli.Currency = cfg.Fleet.Currency
	}

	dbPath := flagData
	if dbPath == "" {
		dbPath = cfg.General.DataPath
	}
	if dbPath == "" {
		dbPath = store.DefaultPath()
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("open store: %w", err)
	}

	led, err := ledger.Open(st, warn)
	if err != nil {
		st.Close()
		return nil, nil, cfg, err
	}
	return led, st, cfg, nil
}

func warn(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "  warning: "+format+"\n", args...)
}

// fleetStats aggregates metrics over the ledger's fuel logs, honoring the
// configured baseline and the --bus filter.
func fleetStats(led *ledger.Ledger, cfg config.Config) model.FleetStats {
	logs := led.FuelLogs
	if flagBus != "" {
		logs = pipeline.FilterByBus(logs, flagBus)
	}
	return pipeline.AggregateWithBaseline(logs, cfg.Fleet.BaselineKmpl)
}

func filteredLogs(led *ledger.Ledger) []model.FuelLog {
	if flagBus == "" {
		return led.FuelLogs
	}
	return pipeline.FilterByBus(led.FuelLogs, flagBus)
}
