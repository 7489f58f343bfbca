package model

import "time"

// AlertSeverity classifies how far a mileage point fell below baseline.
type AlertSeverity string

// Alert severities.
const (
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// AlertMileageDrop is the only alert type the metrics engine emits today.
const AlertMileageDrop = "mileage_drop"

// MileagePoint is the distance/fuel delta between two consecutive odometer
// readings of the same bus. Liters are taken from the earlier fill, the fuel
// consumed to reach the later reading.
type MileagePoint struct {
	BusID   string
	Date    time.Time
	Km      float64
	Liters  float64
	Mileage float64 // km per liter
}

// BusMileage is the average mileage for one bus.
type BusMileage struct {
	BusID   string
	Mileage float64
}

// VendorSpend is the fuel spend total at one station.
type VendorSpend struct {
	Vendor string
	Amount float64
}

// Alert flags a mileage point meaningfully below the fleet baseline.
type Alert struct {
	ID       string
	Type     string
	Message  string
	Severity AlertSeverity
	Date     time.Time
}

// FleetStats holds every derived metric over the fuel log collection,
// recomputed from scratch on each aggregation pass.
type FleetStats struct {
	TotalFuelSpend float64
	TotalKm        float64
	CostPerKm      float64
	AvgMileage     float64

	MileagePoints []MileagePoint
	BusMileage    []BusMileage
	VendorSpend   []VendorSpend
	Alerts        []Alert
}
