package tui

import (
	"fmt"
	"strings"

	"fcab/internal/cli"
	"fcab/internal/model"
	"fcab/internal/tui/components"
	"fcab/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// tableChrome is the vertical overhead around list rows inside a content
// card: card border (2), card title, header line.
const tableChrome = 4

// renderListCard renders a scrollable, cursor-selectable table inside a
// content card. Every row must have len(headers) cells; the first column is
// left-aligned, the rest right-aligned.
func (a App) renderListCard(title string, headers []string, rows [][]string, ls *listState, cw, contentH int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	if len(rows) == 0 {
		return components.ContentCard(title,
			lipgloss.NewStyle().Foreground(t.TextMuted).Render("nothing here yet"), cw)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	formatRow := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if i == 0 {
				parts[i] = cell + strings.Repeat(" ", pad)
			} else {
				parts[i] = strings.Repeat(" ", pad) + cell
			}
		}
		return " " + strings.Join(parts, "  ")
	}

	header := lipgloss.NewStyle().Foreground(t.TextDim).Bold(true).Render(formatRow(headers))

	visible := contentH - tableChrome
	start, end := visibleWindow(ls, len(rows), visible)

	selStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Foreground(t.TextPrimary).Width(inner)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	lines := []string{header}
	for i := start; i < end; i++ {
		line := formatRow(rows[i])
		if i == ls.cursor {
			lines = append(lines, selStyle.Render(line))
		} else {
			lines = append(lines, rowStyle.Render(line))
		}
	}
	if end < len(rows) {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextDim).Render(
			fmt.Sprintf(" … %d more", len(rows)-end)))
	}

	return components.ContentCard(title, strings.Join(lines, "\n"), cw)
}

func statusCell(s string) string {
	t := theme.Active
	switch s {
	case string(model.ExpenseApproved), string(model.InvoicePaid):
		return lipgloss.NewStyle().Foreground(t.Green).Render(s)
	case string(model.ExpenseRejected):
		return lipgloss.NewStyle().Foreground(t.Red).Render(s)
	default:
		return lipgloss.NewStyle().Foreground(t.Orange).Render(s)
	}
}

func (a App) renderFuelTab(cw, contentH int) string {
	logs := a.visibleFuelLogs()

	title := fmt.Sprintf("Fuel Logs (%d)", len(logs))
	if a.searchQuery != "" {
		title = fmt.Sprintf("Fuel Logs matching %q (%d)", a.searchQuery, len(logs))
	}

	headers := []string{"Date", "Bus", "Driver", "Station", "Liters", "₹/L", "Cost", "Odometer"}
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{
			cli.FormatDate(l.Date),
			l.BusID,
			truncStr(l.Driver, 14),
			truncStr(l.Station, 14),
			cli.FormatLiters(l.Liters),
			cli.FormatMoneyPrecise(l.PricePerLiter),
			cli.FormatMoney(l.TotalCost),
			cli.FormatKm(l.Odometer),
		})
	}

	card := a.renderListCard(title, headers, rows, &a.fuel, cw, contentH)

	if a.searching {
		prompt := lipgloss.NewStyle().Foreground(theme.Active.Accent).Render("search: ") +
			a.searchInput.View()
		return lipgloss.JoinVertical(lipgloss.Left,
			components.ContentCard("", prompt, cw), card)
	}
	return card
}

func (a App) renderExpensesTab(cw, contentH int) string {
	headers := []string{"Date", "Driver", "Category", "Description", "Amount", "Status"}
	rows := make([][]string, 0, len(a.led.Expenses))
	for _, e := range a.led.Expenses {
		rows = append(rows, []string{
			cli.FormatDate(e.Date),
			truncStr(e.Driver, 14),
			truncStr(e.Category, 12),
			truncStr(e.Description, 24),
			cli.FormatMoney(e.Amount),
			statusCell(string(e.Status)),
		})
	}
	title := fmt.Sprintf("Expense Claims (%d)", len(a.led.Expenses))
	return a.renderListCard(title, headers, rows, &a.expenses, cw, contentH)
}

func (a App) renderInvoicesTab(cw, contentH int) string {
	headers := []string{"Due", "Vendor", "Invoice #", "Amount", "Status"}
	rows := make([][]string, 0, len(a.led.Invoices))
	for _, inv := range a.led.Invoices {
		rows = append(rows, []string{
			cli.FormatDate(inv.DueDate),
			truncStr(inv.Vendor, 18),
			inv.InvoiceNumber,
			cli.FormatMoney(inv.Amount),
			statusCell(string(inv.Status)),
		})
	}
	title := fmt.Sprintf("Vendor Invoices (%d)", len(a.led.Invoices))
	return a.renderListCard(title, headers, rows, &a.invoices, cw, contentH)
}
