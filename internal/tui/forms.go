package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fcab/internal/model"
	"fcab/internal/tui/components"
	"fcab/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const formDateLayout = "2006-01-02"

// Form drafts hold raw input strings; parsing happens once on submit, after
// huh's per-field validators have already accepted the values.
type fuelFormValues struct {
	bus, driver, station    string
	liters, price, odometer string
	date                    string
}

type expenseFormValues struct {
	driver, category, description string
	amount, date                  string
}

type invoiceFormValues struct {
	vendor, number string
	amount, due    string
}

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func requireNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func requireDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil // blank means today
	}
	if _, err := time.Parse(formDateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now()
	}
	t, err := time.Parse(formDateLayout, s)
	if err != nil {
		return time.Now()
	}
	return t
}

func (a App) openForm(kind int) (tea.Model, tea.Cmd) {
	a.formKind = kind
	today := time.Now().Format(formDateLayout)

	switch kind {
	case tabFuel:
		a.fuelVals = fuelFormValues{date: today}
		a.form = newFuelForm(&a.fuelVals)
	case tabExpenses:
		a.expVals = expenseFormValues{category: "Maintenance", date: today}
		a.form = newExpenseForm(&a.expVals)
	case tabInvoices:
		a.invVals = invoiceFormValues{due: today}
		a.form = newInvoiceForm(&a.invVals)
	default:
		return a, nil
	}

	a.form = a.form.WithWidth(a.formWidth()).WithShowHelp(true)
	return a, a.form.Init()
}

func (a App) formWidth() int {
	w := a.contentWidth() - 8
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	return w
}

func newFuelForm(v *fuelFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Bus ID").Placeholder("BUS-101").Validate(requireText).Value(&v.bus),
			huh.NewInput().Title("Driver").Validate(requireText).Value(&v.driver),
			huh.NewInput().Title("Station").Placeholder("HPCL Andheri").Validate(requireText).Value(&v.station),
			huh.NewInput().Title("Liters").Validate(requireNumber).Value(&v.liters),
			huh.NewInput().Title("Price per liter").Validate(requireNumber).Value(&v.price),
			huh.NewInput().Title("Odometer (km)").Validate(requireNumber).Value(&v.odometer),
			huh.NewInput().Title("Date").Description("YYYY-MM-DD, blank for today").Validate(requireDate).Value(&v.date),
		).Title("Log Refuel"),
	)
}

func newExpenseForm(v *expenseFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Driver").Validate(requireText).Value(&v.driver),
			huh.NewSelect[string]().Title("Category").
				Options(huh.NewOptions("Maintenance", "Toll", "Parking", "Cleaning", "Other")...).
				Value(&v.category),
			huh.NewInput().Title("Description").Value(&v.description),
			huh.NewInput().Title("Amount").Validate(requireNumber).Value(&v.amount),
			huh.NewInput().Title("Date").Description("YYYY-MM-DD, blank for today").Validate(requireDate).Value(&v.date),
		).Title("New Expense Claim"),
	)
}

func newInvoiceForm(v *invoiceFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Vendor").Validate(requireText).Value(&v.vendor),
			huh.NewInput().Title("Invoice number").Placeholder("INV-2024-001").Validate(requireText).Value(&v.number),
			huh.NewInput().Title("Amount").Validate(requireNumber).Value(&v.amount),
			huh.NewInput().Title("Due date").Description("YYYY-MM-DD, blank for today").Validate(requireDate).Value(&v.due),
		).Title("New Vendor Invoice"),
	)
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.submitForm()
		a.form = nil
		return a, nil
	case huh.StateAborted:
		a.form = nil
		a.status = "cancelled"
		return a, nil
	}
	return a, cmd
}

func (a *App) submitForm() {
	var err error
	switch a.formKind {
	case tabFuel:
		v := a.fuelVals
		_, err = a.led.AddFuelLog(model.FuelLog{
			BusID:         strings.TrimSpace(v.bus),
			Driver:        strings.TrimSpace(v.driver),
			Station:       strings.TrimSpace(v.station),
			Liters:        parseNumber(v.liters),
			PricePerLiter: parseNumber(v.price),
			Odometer:      parseNumber(v.odometer),
			Date:          parseDate(v.date),
		})
		a.status = "refuel logged"
	case tabExpenses:
		v := a.expVals
		_, err = a.led.AddExpense(model.Expense{
			Driver:      strings.TrimSpace(v.driver),
			Category:    v.category,
			Description: strings.TrimSpace(v.description),
			Amount:      parseNumber(v.amount),
			Date:        parseDate(v.date),
		})
		a.status = "claim submitted"
	case tabInvoices:
		v := a.invVals
		_, err = a.led.AddInvoice(model.Invoice{
			Vendor:        strings.TrimSpace(v.vendor),
			InvoiceNumber: strings.TrimSpace(v.number),
			Amount:        parseNumber(v.amount),
			DueDate:       parseDate(v.due),
		})
		a.status = "invoice recorded"
	}
	if err != nil {
		a.status = fmt.Sprintf("save failed: %v", err)
	}
	a.recompute()
}

func (a App) viewForm() string {
	t := theme.Active

	card := components.ContentCard("", a.form.View(), a.formWidth()+6)
	hint := lipgloss.NewStyle().Foreground(t.TextDim).Render("esc to cancel")

	body := lipgloss.JoinVertical(lipgloss.Center, card, hint)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body)
}
