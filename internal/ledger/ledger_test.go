package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"fcab/internal/model"
	"fcab/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "fcab.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpen_SeedsFuelLogsOnFirstRun(t *testing.T) {
	st := openTestStore(t)

	led, err := Open(st, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(led.FuelLogs) != 9 {
		t.Fatalf("FuelLogs = %d, want 9 sample rows", len(led.FuelLogs))
	}
	// Expense and invoice slots stay empty; only fuel logs get samples.
	if len(led.Expenses) != 0 || len(led.Invoices) != 0 {
		t.Errorf("Expenses/Invoices = %d/%d, want 0/0", len(led.Expenses), len(led.Invoices))
	}

	// The seed is persisted, so a slot now exists.
	if _, ok, err := st.Get(SlotFuelLogs); err != nil || !ok {
		t.Fatalf("fuel slot after seed: ok=%v err=%v, want stored", ok, err)
	}
}

func TestOpen_EmptySlotIsNotReseeded(t *testing.T) {
	st := openTestStore(t)
	if err := st.Put(SlotFuelLogs, "[]"); err != nil {
		t.Fatal(err)
	}

	led, err := Open(st, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(led.FuelLogs) != 0 {
		t.Fatalf("FuelLogs = %d, want 0: an empty stored slot must not reseed", len(led.FuelLogs))
	}
}

func TestOpen_CorruptSlotWarnsAndLoadsEmpty(t *testing.T) {
	st := openTestStore(t)
	if err := st.Put(SlotFuelLogs, "{not json"); err != nil {
		t.Fatal(err)
	}

	warned := 0
	led, err := Open(st, func(string, ...any) { warned++ })
	if err != nil {
		t.Fatal(err)
	}

	if warned == 0 {
		t.Error("no warning for corrupt slot")
	}
	// Corrupt data loads empty, never the sample rows.
	if len(led.FuelLogs) != 0 {
		t.Fatalf("FuelLogs = %d, want 0 after corrupt slot", len(led.FuelLogs))
	}
}

func TestAddFuelLog_AssignsIDAndCost(t *testing.T) {
	st := openTestStore(t)
	led, err := Open(st, nil)
	if err != nil {
		t.Fatal(err)
	}

	rec, err := led.AddFuelLog(model.FuelLog{
		ID:            "caller-supplied", // must be replaced
		BusID:         "BUS-104",
		Liters:        40,
		PricePerLiter: 100.5,
		TotalCost:     1, // must be recomputed
		Odometer:      50000,
		Date:          time.Now(),
	})
	if err != nil {
		t.Fatal(err)
	}

	if rec.ID == "" || rec.ID == "caller-supplied" {
		t.Errorf("ID = %q, want a generated id", rec.ID)
	}
	if rec.TotalCost != 40*100.5 {
		t.Errorf("TotalCost = %v, want %v", rec.TotalCost, 40*100.5)
	}
	if got := led.FuelLogs[len(led.FuelLogs)-1]; got.ID != rec.ID {
		t.Errorf("last log = %q, want the new record appended", got.ID)
	}
}

func TestAddExpense_StartsPending(t *testing.T) {
	st := openTestStore(t)
	led, err := Open(st, nil)
	if err != nil {
		t.Fatal(err)
	}

	rec, err := led.AddExpense(model.Expense{
		Driver: "Amit",
		Amount: 1200,
		Status: model.ExpenseApproved, // must be reset
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.Status != model.ExpensePending {
		t.Errorf("Status = %q, want pending", rec.Status)
	}
	if led.PendingExpenses() != 1 {
		t.Errorf("PendingExpenses = %d, want 1", led.PendingExpenses())
	}
}

func TestUpdateExpenseStatus(t *testing.T) {
	st := openTestStore(t)
	led, err := Open(st, nil)
	if err != nil {
		t.Fatal(err)
	}

	a, _ := led.AddExpense(model.Expense{Driver: "Amit", Amount: 500})
	b, _ := led.AddExpense(model.Expense{Driver: "Ravi", Amount: 800})

	found, err := led.UpdateExpenseStatus(a.ID, model.ExpenseApproved)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("known id reported not found")
	}

	// Position and the other claim are untouched.
	if led.Expenses[0].ID != a.ID || led.Expenses[0].Status != model.ExpenseApproved {
		t.Errorf("Expenses[0] = %+v, want %s approved in place", led.Expenses[0], a.ID)
	}
	if led.Expenses[1].ID != b.ID || led.Expenses[1].Status != model.ExpensePending {
		t.Errorf("Expenses[1] = %+v, want %s still pending", led.Expenses[1], b.ID)
	}

	// Repeating the same update changes nothing further.
	before := led.Expenses[0]
	if _, err := led.UpdateExpenseStatus(a.ID, model.ExpenseApproved); err != nil {
		t.Fatal(err)
	}
	if led.Expenses[0] != before {
		t.Errorf("repeat update changed the record: %+v vs %+v", led.Expenses[0], before)
	}
}

func TestUpdateStatus_UnknownIDIsNoOp(t *testing.T) {
	st := openTestStore(t)
	led, err := Open(st, nil)
	if err != nil {
		t.Fatal(err)
	}
	led.AddExpense(model.Expense{Driver: "Amit", Amount: 500})
	led.AddInvoice(model.Invoice{Vendor: "HPCL", Amount: 9000})

	found, err := led.UpdateExpenseStatus("nope", model.ExpenseRejected)
	if err != nil || found {
		t.Errorf("expense no-op: found=%v err=%v, want false, nil", found, err)
	}
	found, err = led.UpdateInvoiceStatus("nope", model.InvoicePaid)
	if err != nil || found {
		t.Errorf("invoice no-op: found=%v err=%v, want false, nil", found, err)
	}

	if led.Expenses[0].Status != model.ExpensePending || led.Invoices[0].Status != model.InvoicePending {
		t.Error("unknown-id update touched a record")
	}
}

func TestWriteThrough_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fcab.db")

	st, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	led, err := Open(st, nil)
	if err != nil {
		t.Fatal(err)
	}

	fuel, _ := led.AddFuelLog(model.FuelLog{BusID: "BUS-104", Liters: 40, PricePerLiter: 100, Odometer: 50000, Date: time.Now()})
	exp, _ := led.AddExpense(model.Expense{Driver: "Amit", Amount: 500})
	inv, _ := led.AddInvoice(model.Invoice{Vendor: "HPCL", InvoiceNumber: "INV-1", Amount: 9000})
	if _, err := led.UpdateInvoiceStatus(inv.ID, model.InvoicePaid); err != nil {
		t.Fatal(err)
	}
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	st2, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer st2.Close()
	led2, err := Open(st2, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(led2.FuelLogs) != 10 { // 9 samples + 1 added
		t.Fatalf("FuelLogs after reopen = %d, want 10", len(led2.FuelLogs))
	}
	if got := led2.FuelLogs[9]; got.ID != fuel.ID || got.TotalCost != 4000 {
		t.Errorf("reloaded fuel log = %+v, want id %s cost 4000", got, fuel.ID)
	}
	if len(led2.Expenses) != 1 || led2.Expenses[0].ID != exp.ID {
		t.Fatalf("Expenses after reopen = %+v, want the one claim", led2.Expenses)
	}
	if led2.Invoices[0].Status != model.InvoicePaid {
		t.Errorf("reloaded invoice status = %q, want paid", led2.Invoices[0].Status)
	}
}

func TestSampleFuelLogs_Shape(t *testing.T) {
	logs := sampleFuelLogs()
	if len(logs) != 9 {
		t.Fatalf("samples = %d, want 9", len(logs))
	}

	buses := map[string]bool{}
	for _, l := range logs {
		if l.ID == "" {
			t.Errorf("sample %s has no id", l.BusID)
		}
		if l.Liters <= 0 || l.PricePerLiter <= 0 || l.Odometer <= 0 {
			t.Errorf("sample %+v has non-positive numerics", l)
		}
		buses[l.BusID] = true
	}
	for _, bus := range []string{"BUS-101", "BUS-102", "BUS-103"} {
		if !buses[bus] {
			t.Errorf("samples missing %s", bus)
		}
	}
}
