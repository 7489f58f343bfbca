package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"fcab/internal/model"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump all records as JSON",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

// exportDoc mirrors the persisted slot layout, one array per collection.
type exportDoc struct {
	FuelLogs []model.FuelLog `json:"fuelLogs"`
	Expenses []model.Expense `json:"expenses"`
	Invoices []model.Invoice `json:"invoices"`
}

func runExport(_ *cobra.Command, _ []string) error {
	led, st, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	doc := exportDoc{
		FuelLogs: led.FuelLogs,
		Expenses: led.Expenses,
		Invoices: led.Invoices,
	}
	if doc.FuelLogs == nil {
		doc.FuelLogs = []model.FuelLog{}
	}
	if doc.Expenses == nil {
		doc.Expenses = []model.Expense{}
	}
	if doc.Invoices == nil {
		doc.Invoices = []model.Invoice{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	data = append(data, '\n')

	if exportOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOutput, err)
	}
	fmt.Printf("Exported %d fuel logs, %d claims, %d invoices to %s\n",
		len(doc.FuelLogs), len(doc.Expenses), len(doc.Invoices), exportOutput)
	return nil
}
