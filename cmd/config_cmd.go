// Package cmd implements the fcab CLI commands.
package cmd

import (
	"fmt"

	"fcab/internal/config"
	"fcab/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	dataPath := cfg.General.DataPath
	if dataPath == "" {
		dataPath = store.DefaultPath()
	}

	fmt.Println("  [General]")
	fmt.Printf("    Data path: %s\n", dataPath)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Fleet]")
	fmt.Printf("    Baseline mileage: %.1f km/l\n", cfg.Fleet.BaselineKmpl)
	fmt.Printf("    Currency:         %s\n", cfg.Fleet.Currency)
	fmt.Println()

	fmt.Printf("  Edit %s to change these.\n", config.Path())
	return nil
}
