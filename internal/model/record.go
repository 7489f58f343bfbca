// Package model defines domain types for fcab records and fleet metrics.
package model

import "time"

// ExpenseStatus is the lifecycle state of an expense claim.
type ExpenseStatus string

// Expense claim states. Claims are created pending and move exactly once
// to approved or rejected; they never revert.
const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
)

// InvoiceStatus is the lifecycle state of a vendor invoice.
type InvoiceStatus string

// Vendor invoice states.
const (
	InvoicePending  InvoiceStatus = "pending"
	InvoicePaid     InvoiceStatus = "paid"
	InvoiceRejected InvoiceStatus = "rejected"
)

// FuelLog is one refueling event for a bus. TotalCost is fixed at creation
// time (liters x price per liter) and never recomputed afterwards.
// JSON field names match the persisted slot layout.
type FuelLog struct {
	ID            string    `json:"id"`
	BusID         string    `json:"busId"`
	Driver        string    `json:"driver"`
	Station       string    `json:"station"`
	Liters        float64   `json:"liters"`
	PricePerLiter float64   `json:"pricePerLiter"`
	TotalCost     float64   `json:"totalCost"`
	Odometer      float64   `json:"odometer"`
	Date          time.Time `json:"date"`
}

// Expense is an operator-submitted expense claim awaiting approval.
type Expense struct {
	ID          string        `json:"id"`
	Driver      string        `json:"driver"`
	Amount      float64       `json:"amount"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date"`
	Status      ExpenseStatus `json:"status"`
}

// Invoice is a vendor invoice awaiting payment or rejection.
type Invoice struct {
	ID            string        `json:"id"`
	Vendor        string        `json:"vendor"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Amount        float64       `json:"amount"`
	DueDate       time.Time     `json:"dueDate"`
	Status        InvoiceStatus `json:"status"`
}
