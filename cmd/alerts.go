package cmd

import (
	"fmt"

	"fcab/internal/cli"

	"github.com/spf13/cobra"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Mileage drop alerts",
	RunE:  runAlerts,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(_ *cobra.Command, _ []string) error {
	led, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	stats := fleetStats(led, cfg)
	if len(stats.Alerts) == 0 {
		fmt.Println("\n  No alerts: every tracked fill is within the mileage baseline.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MILEAGE ALERTS"))
	fmt.Println()
	for _, al := range stats.Alerts {
		fmt.Printf("  %s  %s  %s\n",
			cli.RenderSeverity(string(al.Severity)),
			cli.FormatDate(al.Date),
			al.Message,
		)
	}
	fmt.Println()

	return nil
}
