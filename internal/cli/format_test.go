package cli

import "testing"

func TestFormatIndian(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{99999, "99,999"},
		{123456, "1,23,456"},
		{1234567, "12,34,567"},
		{123456789, "12,34,56,789"},
		{-1234567, "-12,34,567"},
	}
	for _, c := range cases {
		if got := FormatIndian(c.in); got != c.want {
			t.Errorf("FormatIndian(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMoneyRounds(t *testing.T) {
	old := Currency
	Currency = "₹"
	defer func() { Currency = old }()

	if got := FormatMoney(5428.5); got != "₹ 5,429" {
		t.Errorf("FormatMoney(5428.5) = %q, want ₹ 5,429", got)
	}
	if got := FormatMoney(5428.4); got != "₹ 5,428" {
		t.Errorf("FormatMoney(5428.4) = %q, want ₹ 5,428", got)
	}
}

func TestFormatMoneyPrecise(t *testing.T) {
	old := Currency
	Currency = "$"
	defer func() { Currency = old }()

	if got := FormatMoneyPrecise(49.637); got != "$ 49.64" {
		t.Errorf("FormatMoneyPrecise(49.637) = %q, want $ 49.64", got)
	}
}

func TestFormatUnits(t *testing.T) {
	if got := FormatMileage(3.8181); got != "3.82 km/l" {
		t.Errorf("FormatMileage = %q, want 3.82 km/l", got)
	}
	if got := FormatKm(120640.4); got != "1,20,640 km" {
		t.Errorf("FormatKm = %q, want 1,20,640 km", got)
	}
	if got := FormatLiters(55); got != "55.0 L" {
		t.Errorf("FormatLiters = %q, want 55.0 L", got)
	}
}
