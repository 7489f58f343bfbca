package tui

import (
	"fmt"
	"time"

	"fcab/internal/cli"
	"fcab/internal/model"
	"fcab/internal/tui/components"
	"fcab/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// apprItem is one pending decision: either an expense claim or a vendor
// invoice, flattened into a single queue.
type apprItem struct {
	isInvoice bool
	id        string
	ref       string // who submitted it, or the vendor name
	detail    string
	amount    float64
	date      time.Time
}

// pendingItems returns the approval queue: pending claims first, then
// pending invoices, each in ledger order.
func (a App) pendingItems() []apprItem {
	var items []apprItem
	for _, e := range a.led.Expenses {
		if e.Status != model.ExpensePending {
			continue
		}
		items = append(items, apprItem{
			id:     e.ID,
			ref:    e.Driver,
			detail: e.Category,
			amount: e.Amount,
			date:   e.Date,
		})
	}
	for _, inv := range a.led.Invoices {
		if inv.Status != model.InvoicePending {
			continue
		}
		items = append(items, apprItem{
			isInvoice: true,
			id:        inv.ID,
			ref:       inv.Vendor,
			detail:    inv.InvoiceNumber,
			amount:    inv.Amount,
			date:      inv.DueDate,
		})
	}
	return items
}

func (a App) renderApprovalsTab(cw, contentH int) string {
	t := theme.Active
	items := a.pendingItems()

	if len(items) == 0 {
		body := lipgloss.NewStyle().Foreground(t.Green).Render("✓ ") +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render("Nothing awaiting a decision")
		return components.ContentCard("Approvals", body, cw)
	}

	headers := []string{"Type", "From", "Detail", "Date", "Amount"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		kind := "claim"
		if it.isInvoice {
			kind = "invoice"
		}
		rows = append(rows, []string{
			kind,
			truncStr(it.ref, 18),
			truncStr(it.detail, 16),
			cli.FormatDate(it.date),
			cli.FormatMoney(it.amount),
		})
	}

	title := fmt.Sprintf("Approvals (%d pending)", len(items))
	card := a.renderListCard(title, headers, rows, &a.approvals, cw, contentH-2)

	hint := lipgloss.NewStyle().Foreground(t.TextDim).Render(
		"  a approve claim · p pay invoice · x reject")
	return lipgloss.JoinVertical(lipgloss.Left, card, hint)
}
