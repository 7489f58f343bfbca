package cmd

import (
	"fmt"

	"fcab/internal/cli"
	"fcab/internal/pipeline"

	"github.com/spf13/cobra"
)

var fuelLimit int

var fuelCmd = &cobra.Command{
	Use:   "fuel",
	Short: "List fuel logs, most recent first",
	RunE:  runFuel,
}

func init() {
	fuelCmd.Flags().IntVarP(&fuelLimit, "limit", "l", 20, "Max rows to show (0 = all)")
	rootCmd.AddCommand(fuelCmd)
}

func runFuel(_ *cobra.Command, _ []string) error {
	led, st, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	logs := pipeline.RecentFirst(filteredLogs(led))
	if len(logs) == 0 {
		fmt.Println("\n  No fuel logs found.")
		return nil
	}

	total := len(logs)
	if fuelLimit > 0 && len(logs) > fuelLimit {
		logs = logs[:fuelLimit]
	}

	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{
			cli.FormatDate(l.Date),
			l.BusID,
			l.Driver,
			l.Station,
			cli.FormatLiters(l.Liters),
			cli.FormatMoneyPrecise(l.PricePerLiter),
			cli.FormatMoney(l.TotalCost),
			cli.FormatKm(l.Odometer),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Fuel Logs (%d of %d)", len(logs), total),
		Headers: []string{"Date", "Bus", "Driver", "Station", "Liters", "Price/L", "Cost", "Odometer"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
