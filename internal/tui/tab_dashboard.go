package tui

import (
	"fmt"

	"fcab/internal/cli"
	"fcab/internal/model"
	"fcab/internal/pipeline"
	"fcab/internal/tui/components"
	"fcab/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const recentFuelRows = 8

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	s := a.stats

	pending := a.led.PendingExpenses() + a.led.PendingInvoices()

	kpis := components.MetricCardRow([]struct{ Label, Value, Sub string }{
		{"Total Fuel Spend", cli.FormatMoney(s.TotalFuelSpend), fmt.Sprintf("%d fills", len(a.led.FuelLogs))},
		{"Cost per km", cli.FormatMoneyPrecise(s.CostPerKm), cli.FormatKm(s.TotalKm) + " tracked"},
		{"Avg Mileage", cli.FormatMileage(s.AvgMileage), fmt.Sprintf("%d buses", len(s.BusMileage))},
		{"Pending Approvals", fmt.Sprintf("%d", pending), fmt.Sprintf("%d claims / %d invoices", a.led.PendingExpenses(), a.led.PendingInvoices())},
	}, cw)

	halves := components.LayoutRow(cw, 2)
	innerL := components.CardInnerWidth(halves[0])
	innerR := components.CardInnerWidth(halves[1])

	busRows := make([]components.HBarRow, 0, len(s.BusMileage))
	for _, b := range s.BusMileage {
		busRows = append(busRows, components.HBarRow{
			Label: b.BusID,
			Value: cli.FormatMileage(b.Mileage),
			Raw:   b.Mileage,
		})
	}
	mileageCard := components.ContentCard("Mileage by Bus",
		components.HBarList(busRows, t.Blue, innerL), halves[0])

	vendorRows := make([]components.HBarRow, 0, len(s.VendorSpend))
	for _, v := range s.VendorSpend {
		vendorRows = append(vendorRows, components.HBarRow{
			Label: v.Vendor,
			Value: cli.FormatMoney(v.Amount),
			Raw:   v.Amount,
		})
	}
	vendorCard := components.ContentCard("Fuel Spend by Vendor",
		components.HBarList(vendorRows, t.Green, innerR), halves[1])

	charts := components.CardRow([]string{mileageCard, vendorCard})

	return lipgloss.JoinVertical(lipgloss.Left,
		kpis,
		charts,
		a.renderAlertsCard(cw),
		a.renderRecentFuelCard(cw),
	)
}

func (a App) renderAlertsCard(cw int) string {
	t := theme.Active
	alerts := a.stats.Alerts

	if len(alerts) == 0 {
		body := lipgloss.NewStyle().Foreground(t.Green).Render("✓ ") +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render("All buses within mileage baseline")
		return components.ContentCard("Alerts", body, cw)
	}

	var body string
	for i, al := range alerts {
		if i > 0 {
			body += "\n"
		}
		mark := lipgloss.NewStyle().Foreground(t.Orange).Render("▲")
		if al.Severity == model.SeverityHigh {
			mark = lipgloss.NewStyle().Foreground(t.Red).Render("▲")
		}
		body += mark + " " +
			lipgloss.NewStyle().Foreground(t.TextPrimary).Render(al.Message) + " " +
			lipgloss.NewStyle().Foreground(t.TextDim).Render(cli.FormatDate(al.Date))
	}
	return components.ContentCard("Alerts", body, cw)
}

func (a App) renderRecentFuelCard(cw int) string {
	t := theme.Active

	logs := pipeline.RecentFirst(a.led.FuelLogs)
	if len(logs) > recentFuelRows {
		logs = logs[:recentFuelRows]
	}
	if len(logs) == 0 {
		return components.ContentCard("Recent Fills",
			lipgloss.NewStyle().Foreground(t.TextMuted).Render("no fuel logs yet"), cw)
	}

	inner := components.CardInnerWidth(cw)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(inner)

	var body string
	for i, l := range logs {
		if i > 0 {
			body += "\n"
		}
		line := fmt.Sprintf("%s  %-8s %-10s %10s %12s  %s",
			cli.FormatDate(l.Date),
			truncStr(l.BusID, 8),
			truncStr(l.Station, 10),
			cli.FormatLiters(l.Liters),
			cli.FormatMoney(l.TotalCost),
			truncStr(l.Driver, 12),
		)
		body += rowStyle.Render(line)
	}
	return components.ContentCard("Recent Fills", body, cw)
}
