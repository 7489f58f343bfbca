package cmd

import (
	"fmt"

	"fcab/internal/cli"
	"fcab/internal/model"

	"github.com/spf13/cobra"
)

var (
	expDriver      string
	expCategory    string
	expDescription string
	expAmount      float64
	expDate        string
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Submit an expense claim",
	RunE:  runExpense,
}

func init() {
	expenseCmd.Flags().StringVar(&expDriver, "driver", "", "Driver name (required)")
	expenseCmd.Flags().StringVar(&expCategory, "category", "Other", "Category (Maintenance, Toll, Parking, Cleaning, Other)")
	expenseCmd.Flags().StringVar(&expDescription, "description", "", "What the money went on")
	expenseCmd.Flags().Float64Var(&expAmount, "amount", 0, "Claim amount (required)")
	expenseCmd.Flags().StringVar(&expDate, "date", "", "Date as YYYY-MM-DD (default: today)")

	expenseCmd.MarkFlagRequired("driver")
	expenseCmd.MarkFlagRequired("amount")

	rootCmd.AddCommand(expenseCmd)
}

func runExpense(_ *cobra.Command, _ []string) error {
	date, err := parseDateFlag(expDate)
	if err != nil {
		return err
	}

	led, st, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := led.AddExpense(model.Expense{
		Driver:      expDriver,
		Category:    expCategory,
		Description: expDescription,
		Amount:      expAmount,
		Date:        date,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Claim %s submitted: %s by %s (%s)\n",
		rec.ID, cli.FormatMoney(rec.Amount), rec.Driver, rec.Status)
	return nil
}
