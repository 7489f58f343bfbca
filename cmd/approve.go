package cmd

import (
	"fmt"

	"fcab/internal/model"

	"github.com/spf13/cobra"
)

var approveCmd = &cobra.Command{
	Use:   "approve <claim-id>",
	Short: "Approve a pending expense claim",
	Args:  cobra.ExactArgs(1),
	RunE:  runApprove,
}

var payCmd = &cobra.Command{
	Use:   "pay <invoice-id>",
	Short: "Mark a vendor invoice as paid",
	Args:  cobra.ExactArgs(1),
	RunE:  runPay,
}

var rejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject an expense claim or vendor invoice",
	Args:  cobra.ExactArgs(1),
	RunE:  runReject,
}

func init() {
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(payCmd)
	rootCmd.AddCommand(rejectCmd)
}

func runApprove(_ *cobra.Command, args []string) error {
	led, st, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	found, err := led.UpdateExpenseStatus(args[0], model.ExpenseApproved)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no expense claim with id %s", args[0])
	}
	fmt.Printf("Claim %s approved\n", args[0])
	return nil
}

func runPay(_ *cobra.Command, args []string) error {
	led, st, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	found, err := led.UpdateInvoiceStatus(args[0], model.InvoicePaid)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no invoice with id %s", args[0])
	}
	fmt.Printf("Invoice %s marked paid\n", args[0])
	return nil
}

// runReject tries the id against claims first, then invoices.
func runReject(_ *cobra.Command, args []string) error {
	led, st, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	found, err := led.UpdateExpenseStatus(args[0], model.ExpenseRejected)
	if err != nil {
		return err
	}
	if found {
		fmt.Printf("Claim %s rejected\n", args[0])
		return nil
	}

	found, err = led.UpdateInvoiceStatus(args[0], model.InvoiceRejected)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no claim or invoice with id %s", args[0])
	}
	fmt.Printf("Invoice %s rejected\n", args[0])
	return nil
}
