package tui

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"fcab/internal/config"
	"fcab/internal/ledger"
	"fcab/internal/model"
	"fcab/internal/store"
	"fcab/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func putSlot(t *testing.T, st *store.Store, key string, records any) {
	t.Helper()
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Put(key, string(data)); err != nil {
		t.Fatal(err)
	}
}

func newTestApp(t *testing.T) App {
	t.Helper()
	theme.SetActive("flexoki-dark")

	st, err := store.Open(filepath.Join(t.TempDir(), "fcab.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	putSlot(t, st, ledger.SlotFuelLogs, []model.FuelLog{
		{ID: "f1", BusID: "BUS-101", Driver: "Amit", Station: "HPCL", Liters: 55, PricePerLiter: 98.7, TotalCost: 5429, Odometer: 120000, Date: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "f2", BusID: "BUS-101", Driver: "Amit", Station: "BPCL", Liters: 50, PricePerLiter: 99.9, TotalCost: 4995, Odometer: 120210, Date: time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)},
	})
	putSlot(t, st, ledger.SlotExpenses, []model.Expense{
		{ID: "e1", Driver: "Ravi", Amount: 500, Category: "Toll", Date: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC), Status: model.ExpensePending},
	})

	led, err := ledger.Open(st, nil)
	if err != nil {
		t.Fatal(err)
	}

	a := NewApp(led, config.DefaultConfig())
	sized, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return sized.(App)
}

func press(t *testing.T, a App, key string) App {
	t.Helper()
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return m.(App)
}

func TestNumberKeysSelectTabs(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "3")
	if a.activeTab != tabExpenses {
		t.Fatalf("activeTab = %d, want %d after pressing 3", a.activeTab, tabExpenses)
	}
	a = press(t, a, "1")
	if a.activeTab != tabDashboard {
		t.Fatalf("activeTab = %d, want %d after pressing 1", a.activeTab, tabDashboard)
	}

	if out := a.View(); out == "" {
		t.Fatal("View rendered nothing at 120x40")
	}
}

func TestNewRecordFormLifecycle(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "2") // fuel tab
	a = press(t, a, "n")

	if a.form == nil {
		t.Fatal("no form after pressing n on the fuel tab")
	}
	if a.form.State != huh.StateNormal {
		t.Fatalf("form state = %v, want StateNormal", a.form.State)
	}
	if out := a.View(); out == "" {
		t.Fatal("form view rendered nothing")
	}

	// Esc aborts the form without touching the ledger.
	before := len(a.led.FuelLogs)
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = m.(App)
	if a.form != nil {
		t.Fatal("form still active after esc")
	}
	if len(a.led.FuelLogs) != before {
		t.Fatalf("FuelLogs = %d, want %d: abort must not add a record", len(a.led.FuelLogs), before)
	}
}

func TestApprovalsAcceptUpdatesStatus(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "5")
	if got := len(a.pendingItems()); got != 1 {
		t.Fatalf("pending items = %d, want 1", got)
	}

	a = press(t, a, "a")
	if a.led.Expenses[0].Status != model.ExpenseApproved {
		t.Fatalf("claim status = %q, want approved", a.led.Expenses[0].Status)
	}
	if got := len(a.pendingItems()); got != 0 {
		t.Fatalf("pending items = %d, want 0 after approval", got)
	}
}
