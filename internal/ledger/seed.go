package ledger

import (
	"time"

	"fcab/internal/model"

	"github.com/google/uuid"
)

// sampleFuelLogs returns the demo rows seeded when no fuel-log slot exists
// at all. Dates are spread over the last twelve days so the dashboard has
// something to chart on first run.
func sampleFuelLogs() []model.FuelLog {
	now := time.Now()
	daysAgo := func(n int) time.Time { return now.Add(-time.Duration(n) * 24 * time.Hour) }

	return []model.FuelLog{
		{ID: uuid.NewString(), BusID: "BUS-101", Driver: "Amit", Station: "HPCL", Liters: 55, PricePerLiter: 98.7, TotalCost: 5429, Odometer: 120000, Date: daysAgo(12)},
		{ID: uuid.NewString(), BusID: "BUS-102", Driver: "Ravi", Station: "IOCL", Liters: 60, PricePerLiter: 99.2, TotalCost: 5952, Odometer: 98000, Date: daysAgo(11)},
		{ID: uuid.NewString(), BusID: "BUS-101", Driver: "Amit", Station: "BPCL", Liters: 50, PricePerLiter: 99.9, TotalCost: 4995, Odometer: 120210, Date: daysAgo(9)},
		{ID: uuid.NewString(), BusID: "BUS-103", Driver: "Neha", Station: "HPCL", Liters: 65, PricePerLiter: 98.3, TotalCost: 6389, Odometer: 75210, Date: daysAgo(8)},
		{ID: uuid.NewString(), BusID: "BUS-102", Driver: "Ravi", Station: "Reliance", Liters: 58, PricePerLiter: 97.8, TotalCost: 5672, Odometer: 98220, Date: daysAgo(7)},
		{ID: uuid.NewString(), BusID: "BUS-101", Driver: "Amit", Station: "HPCL", Liters: 52, PricePerLiter: 98.4, TotalCost: 5117, Odometer: 120430, Date: daysAgo(5)},
		{ID: uuid.NewString(), BusID: "BUS-103", Driver: "Neha", Station: "IOCL", Liters: 62, PricePerLiter: 99.1, TotalCost: 6144, Odometer: 75410, Date: daysAgo(3)},
		{ID: uuid.NewString(), BusID: "BUS-102", Driver: "Ravi", Station: "BPCL", Liters: 59, PricePerLiter: 99.6, TotalCost: 5886, Odometer: 98410, Date: daysAgo(2)},
		{ID: uuid.NewString(), BusID: "BUS-101", Driver: "Amit", Station: "Reliance", Liters: 51, PricePerLiter: 98.2, TotalCost: 5008, Odometer: 120640, Date: daysAgo(1)},
	}
}
