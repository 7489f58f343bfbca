package cmd

import (
	"fmt"

	"fcab/internal/cli"

	"github.com/spf13/cobra"
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "Top fuel vendors by spend",
	RunE:  runVendors,
}

func init() {
	rootCmd.AddCommand(vendorsCmd)
}

func runVendors(_ *cobra.Command, _ []string) error {
	led, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	stats := fleetStats(led, cfg)
	if len(stats.VendorSpend) == 0 {
		fmt.Println("\n  No fuel logs found.")
		return nil
	}

	maxSpend := stats.VendorSpend[0].Amount

	rows := make([][]string, 0, len(stats.VendorSpend))
	for _, v := range stats.VendorSpend {
		share := 0.0
		if stats.TotalFuelSpend > 0 {
			share = v.Amount / stats.TotalFuelSpend * 100
		}
		rows = append(rows, []string{
			v.Vendor,
			cli.FormatMoney(v.Amount),
			fmt.Sprintf("%.1f%%", share),
			cli.RenderHorizontalBar(v.Amount, maxSpend, 20),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Fuel Spend by Vendor",
		Headers: []string{"Vendor", "Spend", "Share", ""},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
