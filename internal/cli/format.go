// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Currency is the display symbol prepended to money values. Overridden from
// config at startup.
var Currency = "₹"

// FormatMoney formats a money value rounded to whole units.
// e.g., 5428.5 -> "₹ 5,429"
func FormatMoney(v float64) string {
	return Currency + " " + FormatIndian(int64(math.Round(v)))
}

// FormatMoneyPrecise formats a money value with two decimals, for rates like
// cost per km or price per liter.
func FormatMoneyPrecise(v float64) string {
	return fmt.Sprintf("%s %.2f", Currency, v)
}

// FormatIndian adds Indian-style digit grouping: the last three digits form
// one group, every pair after that its own. e.g., 1234567 -> "12,34,567"
func FormatIndian(n int64) string {
	if n < 0 {
		return "-" + FormatIndian(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	out := s[len(s)-3:]
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return head + "," + out
}

// FormatMileage formats a km-per-liter value.
func FormatMileage(v float64) string {
	return fmt.Sprintf("%.2f km/l", v)
}

// FormatKm formats a distance in kilometers.
func FormatKm(v float64) string {
	return FormatIndian(int64(math.Round(v))) + " km"
}

// FormatLiters formats a fuel quantity.
func FormatLiters(v float64) string {
	return fmt.Sprintf("%.1f L", v)
}

// FormatDate formats a record date for tables.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 02 2006")
}

// FormatDateTime formats a timestamp with time of day, used on alerts.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 02 2006 15:04")
}
