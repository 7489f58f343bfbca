package cmd

import (
	"fmt"

	"fcab/internal/cli"
	"fcab/internal/model"

	"github.com/spf13/cobra"
)

var (
	invVendor string
	invNumber string
	invAmount float64
	invDue    string
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Record a vendor invoice",
	RunE:  runInvoice,
}

func init() {
	invoiceCmd.Flags().StringVar(&invVendor, "vendor", "", "Vendor name (required)")
	invoiceCmd.Flags().StringVar(&invNumber, "number", "", "Invoice number (required)")
	invoiceCmd.Flags().Float64Var(&invAmount, "amount", 0, "Invoice amount (required)")
	invoiceCmd.Flags().StringVar(&invDue, "due", "", "Due date as YYYY-MM-DD (default: today)")

	invoiceCmd.MarkFlagRequired("vendor")
	invoiceCmd.MarkFlagRequired("number")
	invoiceCmd.MarkFlagRequired("amount")

	rootCmd.AddCommand(invoiceCmd)
}

func runInvoice(_ *cobra.Command, _ []string) error {
	due, err := parseDateFlag(invDue)
	if err != nil {
		return err
	}

	led, st, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := led.AddInvoice(model.Invoice{
		Vendor:        invVendor,
		InvoiceNumber: invNumber,
		Amount:        invAmount,
		DueDate:       due,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Invoice %s recorded: %s from %s due %s (%s)\n",
		rec.InvoiceNumber, cli.FormatMoney(rec.Amount), rec.Vendor,
		cli.FormatDate(rec.DueDate), rec.Status)
	return nil
}
