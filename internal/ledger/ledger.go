// Package ledger owns the in-memory record collections and their mutations.
//
// The in-memory slices are authoritative for the life of the process; the
// slot store is a write-through mirror updated immediately after every
// mutation. Each collection persists independently.
package ledger

import (
	"encoding/json"
	"fmt"

	"fcab/internal/model"
	"fcab/internal/store"

	"github.com/google/uuid"
)

// Slot keys, one per collection. The names are part of the persisted layout.
const (
	SlotFuelLogs = "fcab:fuelLogs"
	SlotExpenses = "fcab:expenses"
	SlotInvoices = "fcab:invoices"
)

// WarnFunc receives non-fatal load diagnostics (e.g. a corrupt slot).
type WarnFunc func(format string, args ...any)

// Ledger holds the three record collections and their backing store.
type Ledger struct {
	FuelLogs []model.FuelLog
	Expenses []model.Expense
	Invoices []model.Invoice

	st   *store.Store
	warn WarnFunc
}

// Open loads all three collections from the store.
//
// An absent fuel-log slot seeds the built-in sample rows; absent expense and
// invoice slots load empty. A slot that exists but does not parse falls back
// to empty and is reported through warn. Sample rows are never substituted
// for stored data, corrupt or not.
func Open(st *store.Store, warn WarnFunc) (*Ledger, error) {
	if warn == nil {
		warn = func(string, ...any) {}
	}
	l := &Ledger{st: st, warn: warn}

	absent, err := loadSlot(l, SlotFuelLogs, &l.FuelLogs)
	if err != nil {
		return nil, err
	}
	if absent {
		l.FuelLogs = sampleFuelLogs()
		if err := l.persistFuelLogs(); err != nil {
			return nil, err
		}
	}

	if _, err := loadSlot(l, SlotExpenses, &l.Expenses); err != nil {
		return nil, err
	}
	if _, err := loadSlot(l, SlotInvoices, &l.Invoices); err != nil {
		return nil, err
	}
	return l, nil
}

// loadSlot fills dest from one slot. The bool result reports an absent slot
// (no stored value at all), which only the fuel-log collection acts on.
func loadSlot[T any](l *Ledger, key string, dest *[]T) (absent bool, err error) {
	raw, ok, err := l.st.Get(key)
	if err != nil {
		return false, fmt.Errorf("reading slot %s: %w", key, err)
	}
	if !ok {
		return true, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		l.warn("slot %s holds unparseable data, starting empty: %v", key, err)
		*dest = nil
	}
	return false, nil
}

func (l *Ledger) persistFuelLogs() error { return persistSlot(l.st, SlotFuelLogs, l.FuelLogs) }
func (l *Ledger) persistExpenses() error { return persistSlot(l.st, SlotExpenses, l.Expenses) }
func (l *Ledger) persistInvoices() error { return persistSlot(l.st, SlotInvoices, l.Invoices) }

func persistSlot[T any](st *store.Store, key string, records []T) error {
	if records == nil {
		records = []T{} // keep the slot a JSON array, not null
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding slot %s: %w", key, err)
	}
	if err := st.Put(key, string(data)); err != nil {
		return fmt.Errorf("writing slot %s: %w", key, err)
	}
	return nil
}

// AddFuelLog appends a new fuel log. The ID is generator-assigned and the
// total cost is derived from liters and price; both overwrite whatever the
// draft carried. Field values themselves are accepted as-is.
func (l *Ledger) AddFuelLog(draft model.FuelLog) (model.FuelLog, error) {
	draft.ID = uuid.NewString()
	draft.TotalCost = draft.Liters * draft.PricePerLiter
	l.FuelLogs = append(l.FuelLogs, draft)
	return draft, l.persistFuelLogs()
}

// AddExpense appends a new expense claim with status pending.
func (l *Ledger) AddExpense(draft model.Expense) (model.Expense, error) {
	draft.ID = uuid.NewString()
	draft.Status = model.ExpensePending
	l.Expenses = append(l.Expenses, draft)
	return draft, l.persistExpenses()
}

// AddInvoice appends a new vendor invoice with status pending.
func (l *Ledger) AddInvoice(draft model.Invoice) (model.Invoice, error) {
	draft.ID = uuid.NewString()
	draft.Status = model.InvoicePending
	l.Invoices = append(l.Invoices, draft)
	return draft, l.persistInvoices()
}

// UpdateExpenseStatus replaces the status of the claim with the given id,
// preserving every other field and the claim's position. An unknown id is a
// silent no-op; the bool result reports whether a row changed.
func (l *Ledger) UpdateExpenseStatus(id string, status model.ExpenseStatus) (bool, error) {
	for i := range l.Expenses {
		if l.Expenses[i].ID == id {
			l.Expenses[i].Status = status
			return true, l.persistExpenses()
		}
	}
	return false, nil
}

// UpdateInvoiceStatus replaces the status of the invoice with the given id.
// Same contract as UpdateExpenseStatus.
func (l *Ledger) UpdateInvoiceStatus(id string, status model.InvoiceStatus) (bool, error) {
	for i := range l.Invoices {
		if l.Invoices[i].ID == id {
			l.Invoices[i].Status = status
			return true, l.persistInvoices()
		}
	}
	return false, nil
}

// PendingExpenses counts claims still awaiting a decision.
func (l *Ledger) PendingExpenses() int {
	n := 0
	for _, e := range l.Expenses {
		if e.Status == model.ExpensePending {
			n++
		}
	}
	return n
}

// PendingInvoices counts invoices still awaiting payment or rejection.
func (l *Ledger) PendingInvoices() int {
	n := 0
	for _, inv := range l.Invoices {
		if inv.Status == model.InvoicePending {
			n++
		}
	}
	return n
}
