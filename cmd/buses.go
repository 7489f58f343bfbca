package cmd

import (
	"fmt"

	"fcab/internal/cli"

	"github.com/spf13/cobra"
)

var busesCmd = &cobra.Command{
	Use:   "buses",
	Short: "Per-bus mileage averages",
	RunE:  runBuses,
}

func init() {
	rootCmd.AddCommand(busesCmd)
}

func runBuses(_ *cobra.Command, _ []string) error {
	led, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	stats := fleetStats(led, cfg)
	if len(stats.BusMileage) == 0 {
		fmt.Println("\n  Not enough data: mileage needs two fills per bus.")
		return nil
	}

	maxMileage := 0.0
	for _, b := range stats.BusMileage {
		if b.Mileage > maxMileage {
			maxMileage = b.Mileage
		}
	}

	rows := make([][]string, 0, len(stats.BusMileage))
	for _, b := range stats.BusMileage {
		rows = append(rows, []string{
			b.BusID,
			cli.FormatMileage(b.Mileage),
			cli.RenderHorizontalBar(b.Mileage, maxMileage, 20),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Mileage by Bus",
		Headers: []string{"Bus", "Avg Mileage", ""},
		Rows:    rows,
	}))
	fmt.Printf("\n  Fleet average: %s\n\n", cli.FormatMileage(stats.AvgMileage))

	return nil
}
