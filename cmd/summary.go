package cmd

import (
	"fmt"

	"fcab/internal/cli"
	"fcab/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Fleet spend and mileage summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	led, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	stats := fleetStats(led, cfg)
	logs := filteredLogs(led)

	if len(logs) == 0 {
		fmt.Println("\n  No fuel logs found.")
		fmt.Println("  Log a refuel with: fcab log")
		return nil
	}

	title := "FLEET SUMMARY"
	if flagBus != "" {
		title = fmt.Sprintf("FLEET SUMMARY  %s", flagBus)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := [][]string{
		{"Fuel Spend", cli.FormatMoney(stats.TotalFuelSpend)},
		{"Fills", fmt.Sprintf("%d", len(logs))},
		{"Distance Tracked", cli.FormatKm(stats.TotalKm)},
		{"---"},
		{"Avg Mileage", cli.FormatMileage(stats.AvgMileage)},
		{"Cost per km", cli.FormatMoneyPrecise(stats.CostPerKm)},
		{"---"},
		{"Pending Claims", fmt.Sprintf("%d", led.PendingExpenses())},
		{"Pending Invoices", fmt.Sprintf("%d", led.PendingInvoices())},
		{"Alerts", fmt.Sprintf("%d", len(stats.Alerts))},
	}
	fmt.Println(cli.RenderTable(cli.Table{Headers: []string{"Metric", "Value"}, Rows: rows}))

	if len(stats.Alerts) > 0 {
		fmt.Println()
		for _, al := range stats.Alerts {
			fmt.Printf("  %s %s\n", cli.RenderSeverity(string(al.Severity)), al.Message)
		}
	}

	recent := pipeline.RecentFirst(logs)
	if len(recent) > 5 {
		recent = recent[:5]
	}
	fmt.Println()
	recentRows := make([][]string, 0, len(recent))
	for _, l := range recent {
		recentRows = append(recentRows, []string{
			l.BusID,
			cli.FormatDate(l.Date),
			cli.FormatLiters(l.Liters),
			cli.FormatMoney(l.TotalCost),
		})
	}
	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Recent Fills",
		Headers: []string{"Bus", "Date", "Liters", "Cost"},
		Rows:    recentRows,
	}))
	fmt.Println()

	return nil
}
