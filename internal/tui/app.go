// Package tui provides the interactive Bubble Tea dashboard for fcab.
package tui

import (
	"fmt"
	"strings"

	"fcab/internal/config"
	"fcab/internal/ledger"
	"fcab/internal/model"
	"fcab/internal/pipeline"
	"fcab/internal/tui/components"
	"fcab/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabDashboard = iota
	tabFuel
	tabExpenses
	tabInvoices
	tabApprovals
)

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5
)

// listState holds cursor and scroll position for one table tab.
type listState struct {
	cursor int
	offset int
}

// App is the root Bubble Tea model. The ledger is loaded synchronously
// before the program starts; every mutation goes through it and is followed
// by a metrics recompute.
type App struct {
	led   *ledger.Ledger
	cfg   config.Config
	stats model.FleetStats

	width     int
	height    int
	activeTab int
	showHelp  bool
	status    string // transient message shown in the status bar

	fuel      listState
	expenses  listState
	invoices  listState
	approvals listState

	// Fuel tab search
	searching   bool
	searchInput textinput.Model
	searchQuery string

	// Add-record form (huh), nil when inactive
	form     *huh.Form
	formKind int // one of the tab constants; identifies which draft to submit
	fuelVals fuelFormValues
	expVals  expenseFormValues
	invVals  invoiceFormValues
}

// NewApp creates the TUI model over an already-loaded ledger.
func NewApp(led *ledger.Ledger, cfg config.Config) App {
	a := App{led: led, cfg: cfg}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

func (a *App) recompute() {
	a.stats = pipeline.AggregateWithBaseline(a.led.FuelLogs, a.cfg.Fleet.BaselineKmpl)

	a.clampCursor(&a.fuel, len(a.visibleFuelLogs()))
	a.clampCursor(&a.expenses, len(a.led.Expenses))
	a.clampCursor(&a.invoices, len(a.led.Invoices))
	a.clampCursor(&a.approvals, len(a.pendingItems()))
}

func (a App) clampCursor(ls *listState, n int) {
	if ls.cursor >= n {
		ls.cursor = n - 1
	}
	if ls.cursor < 0 {
		ls.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil
	}

	// The active form intercepts everything, including cursor blinks.
	if a.form != nil {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	if key.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.searching {
		return a.updateSearch(key)
	}

	k := key.String()

	if k == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if k == "q" {
		return a, tea.Quit
	}

	// Tab navigation
	switch k {
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		a.status = ""
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		a.status = ""
		return a, nil
	}
	if len(k) == 1 {
		if idx := components.TabIdxByKey(rune(k[0])); idx >= 0 {
			a.activeTab = idx
			a.status = ""
			return a, nil
		}
	}

	switch a.activeTab {
	case tabFuel:
		return a.updateFuelTab(k)
	case tabExpenses:
		return a.updateExpensesTab(k)
	case tabInvoices:
		return a.updateInvoicesTab(k)
	case tabApprovals:
		return a.updateApprovalsTab(k)
	}

	return a, nil
}

func (a App) updateSearch(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		a.searchQuery = strings.TrimSpace(a.searchInput.Value())
		a.searching = false
		a.fuel.cursor = 0
		a.fuel.offset = 0
		return a, nil
	case "esc":
		a.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(key)
	return a, cmd
}

func moveCursor(ls *listState, k string, n int) {
	switch k {
	case "j", "down":
		if ls.cursor < n-1 {
			ls.cursor++
		}
	case "k", "up":
		if ls.cursor > 0 {
			ls.cursor--
		}
	case "g":
		ls.cursor = 0
		ls.offset = 0
	case "G":
		ls.cursor = n - 1
		if ls.cursor < 0 {
			ls.cursor = 0
		}
	}
}

func (a App) updateFuelTab(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "/":
		a.searching = true
		a.searchInput = newSearchInput()
		a.searchInput.Focus()
		return a, textinput.Blink
	case "esc":
		if a.searchQuery != "" {
			a.searchQuery = ""
			a.fuel.cursor = 0
			a.fuel.offset = 0
		}
		return a, nil
	case "n":
		return a.openForm(tabFuel)
	}
	moveCursor(&a.fuel, k, len(a.visibleFuelLogs()))
	return a, nil
}

func (a App) updateExpensesTab(k string) (tea.Model, tea.Cmd) {
	if k == "n" {
		return a.openForm(tabExpenses)
	}
	moveCursor(&a.expenses, k, len(a.led.Expenses))
	return a, nil
}

func (a App) updateInvoicesTab(k string) (tea.Model, tea.Cmd) {
	if k == "n" {
		return a.openForm(tabInvoices)
	}
	moveCursor(&a.invoices, k, len(a.led.Invoices))
	return a, nil
}

func (a App) updateApprovalsTab(k string) (tea.Model, tea.Cmd) {
	items := a.pendingItems()

	switch k {
	case "a", "p":
		if a.approvals.cursor < len(items) {
			a.decide(items[a.approvals.cursor], true)
		}
		return a, nil
	case "x":
		if a.approvals.cursor < len(items) {
			a.decide(items[a.approvals.cursor], false)
		}
		return a, nil
	}
	moveCursor(&a.approvals, k, len(items))
	return a, nil
}

// decide applies an approve/pay or reject decision to a pending item.
func (a *App) decide(item apprItem, accept bool) {
	var err error
	if item.isInvoice {
		status := model.InvoiceRejected
		if accept {
			status = model.InvoicePaid
		}
		_, err = a.led.UpdateInvoiceStatus(item.id, status)
		a.status = fmt.Sprintf("invoice %s %s", item.ref, status)
	} else {
		status := model.ExpenseRejected
		if accept {
			status = model.ExpenseApproved
		}
		_, err = a.led.UpdateExpenseStatus(item.id, status)
		a.status = fmt.Sprintf("claim by %s %s", item.ref, status)
	}
	if err != nil {
		a.status = fmt.Sprintf("save failed: %v", err)
	}
	a.recompute()
}

// visibleFuelLogs returns the date-sorted fuel logs, narrowed by the active
// search query (matches bus, driver, or station).
func (a App) visibleFuelLogs() []model.FuelLog {
	logs := pipeline.RecentFirst(a.led.FuelLogs)
	if a.searchQuery == "" {
		return logs
	}
	q := strings.ToLower(a.searchQuery)
	var result []model.FuelLog
	for _, l := range logs {
		if strings.Contains(strings.ToLower(l.BusID), q) ||
			strings.Contains(strings.ToLower(l.Driver), q) ||
			strings.Contains(strings.ToLower(l.Station), q) {
			result = append(result, l)
		}
	}
	return result
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "bus, driver, or station"
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  fcab needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab) + "\n"

	pending := a.led.PendingExpenses() + a.led.PendingInvoices()
	statusBar := components.RenderStatusBar(w, a.status, pending)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabFuel:
		content = a.renderFuelTab(cw, contentH)
	case tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case tabInvoices:
		content = a.renderInvoicesTab(cw, contentH)
	case tabApprovals:
		content = a.renderApprovalsTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	bindings := []struct{ key, desc string }{
		{"1-5", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move selection"},
		{"g G", "First / Last row"},
		{"n", "New record (Fuel / Expenses / Invoices)"},
		{"/", "Search fuel logs"},
		{"a p", "Approve claim / Mark invoice paid"},
		{"x", "Reject"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-5s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

// visibleWindow adjusts the scroll offset so the cursor stays on screen and
// returns the [start, end) slice bounds for the list rows.
func visibleWindow(ls *listState, n, visible int) (int, int) {
	if visible < 1 {
		visible = 1
	}
	if ls.cursor < ls.offset {
		ls.offset = ls.cursor
	}
	if ls.cursor >= ls.offset+visible {
		ls.offset = ls.cursor - visible + 1
	}
	end := ls.offset + visible
	if end > n {
		end = n
	}
	return ls.offset, end
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
