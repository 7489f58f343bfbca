// Package pipeline derives fleet metrics from the raw fuel log collection.
//
// Everything is recomputed from scratch on each call. Fleet-scale logs are
// small, so an O(n log n) pass per render beats carrying incremental state.
package pipeline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fcab/internal/model"
)

const (
	// DefaultBaselineKmpl is the mileage baseline used when the fleet has no
	// mileage points of its own yet.
	DefaultBaselineKmpl = 4.5

	// Alert thresholds: a point qualifies below 80% of baseline and is
	// severe below 60%.
	alertFactor  = 0.8
	severeFactor = 0.6

	maxVendorRows = 6
	maxAlerts     = 5
)

// Aggregate computes all fleet statistics using the default baseline fallback.
func Aggregate(logs []model.FuelLog) model.FleetStats {
	return AggregateWithBaseline(logs, DefaultBaselineKmpl)
}

// AggregateWithBaseline computes all fleet statistics. fallbackKmpl is the
// alert baseline used only when the fleet's own average mileage is zero.
func AggregateWithBaseline(logs []model.FuelLog, fallbackKmpl float64) model.FleetStats {
	var stats model.FleetStats

	spendByStation := make(map[string]float64)
	for _, l := range logs {
		stats.TotalFuelSpend += l.TotalCost
		spendByStation[l.Station] += l.TotalCost
	}
	stats.VendorSpend = rankVendors(spendByStation)

	stats.MileagePoints = mileagePoints(logs)

	var mileageSum float64
	for _, p := range stats.MileagePoints {
		mileageSum += p.Mileage
		stats.TotalKm += p.Km
	}
	if n := len(stats.MileagePoints); n > 0 {
		stats.AvgMileage = mileageSum / float64(n)
	}
	if stats.TotalKm > 0 {
		stats.CostPerKm = stats.TotalFuelSpend / stats.TotalKm
	}

	stats.BusMileage = busAverages(stats.MileagePoints)
	stats.Alerts = mileageAlerts(stats.MileagePoints, stats.AvgMileage, fallbackKmpl)

	return stats
}

// rankVendors sorts station spend descending by amount, ties by station name,
// and keeps the top entries.
func rankVendors(spend map[string]float64) []model.VendorSpend {
	vendors := make([]model.VendorSpend, 0, len(spend))
	for station, amount := range spend {
		vendors = append(vendors, model.VendorSpend{Vendor: station, Amount: amount})
	}
	sort.Slice(vendors, func(i, j int) bool {
		if vendors[i].Amount != vendors[j].Amount {
			return vendors[i].Amount > vendors[j].Amount
		}
		return vendors[i].Vendor < vendors[j].Vendor
	})
	if len(vendors) > maxVendorRows {
		vendors = vendors[:maxVendorRows]
	}
	return vendors
}

// mileagePoints partitions the logs by bus, sorts each bus's entries by
// odometer ascending, and emits one point per consecutive pair with positive
// distance and positive liters at the earlier fill. Buses are visited in
// order of first appearance in the odometer-sorted log so the output is
// deterministic.
func mileagePoints(logs []model.FuelLog) []model.MileagePoint {
	sorted := make([]model.FuelLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Odometer < sorted[j].Odometer
	})

	byBus := make(map[string][]model.FuelLog)
	var busOrder []string
	for _, l := range sorted {
		if _, seen := byBus[l.BusID]; !seen {
			busOrder = append(busOrder, l.BusID)
		}
		byBus[l.BusID] = append(byBus[l.BusID], l)
	}

	var points []model.MileagePoint
	for _, bus := range busOrder {
		entries := byBus[bus]
		for i := 1; i < len(entries); i++ {
			prev, curr := entries[i-1], entries[i]
			km := curr.Odometer - prev.Odometer
			if km <= 0 || prev.Liters <= 0 {
				continue
			}
			points = append(points, model.MileagePoint{
				BusID:   curr.BusID,
				Date:    curr.Date,
				Km:      km,
				Liters:  prev.Liters,
				Mileage: km / prev.Liters,
			})
		}
	}
	return points
}

// busAverages computes the mean mileage per bus, one row per bus with at
// least one point, in point order.
func busAverages(points []model.MileagePoint) []model.BusMileage {
	type acc struct {
		sum   float64
		count int
	}
	sums := make(map[string]*acc)
	var order []string
	for _, p := range points {
		a, ok := sums[p.BusID]
		if !ok {
			a = &acc{}
			sums[p.BusID] = a
			order = append(order, p.BusID)
		}
		a.sum += p.Mileage
		a.count++
	}

	buses := make([]model.BusMileage, 0, len(order))
	for _, bus := range order {
		a := sums[bus]
		buses = append(buses, model.BusMileage{BusID: bus, Mileage: a.sum / float64(a.count)})
	}
	return buses
}

// mileageAlerts flags points below 80% of baseline, keeping only the last
// few qualifying points overall in generation order.
func mileageAlerts(points []model.MileagePoint, avgMileage, fallbackKmpl float64) []model.Alert {
	baseline := avgMileage
	if baseline == 0 {
		baseline = fallbackKmpl
	}
	threshold := baseline * alertFactor

	var qualifying []model.MileagePoint
	for _, p := range points {
		if p.Mileage < threshold {
			qualifying = append(qualifying, p)
		}
	}
	if len(qualifying) > maxAlerts {
		qualifying = qualifying[len(qualifying)-maxAlerts:]
	}

	alerts := make([]model.Alert, 0, len(qualifying))
	for _, p := range qualifying {
		severity := model.SeverityMedium
		if p.Mileage < baseline*severeFactor {
			severity = model.SeverityHigh
		}
		alerts = append(alerts, model.Alert{
			ID:       p.BusID + "-" + p.Date.Format(time.RFC3339),
			Type:     model.AlertMileageDrop,
			Message:  fmt.Sprintf("Mileage drop on %s: %.2f km/l (< %.1f km/l)", p.BusID, p.Mileage, threshold),
			Severity: severity,
			Date:     p.Date,
		})
	}
	return alerts
}

// RecentFirst returns a copy of the logs sorted by date descending.
func RecentFirst(logs []model.FuelLog) []model.FuelLog {
	sorted := make([]model.FuelLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// FilterByBus returns logs whose bus id matches the substring.
func FilterByBus(logs []model.FuelLog, bus string) []model.FuelLog {
	if bus == "" {
		return logs
	}
	var result []model.FuelLog
	for _, l := range logs {
		if containsIgnoreCase(l.BusID, bus) {
			result = append(result, l)
		}
	}
	return result
}

// FilterByTime returns logs whose date falls within [since, until).
// Zero bounds are open.
func FilterByTime(logs []model.FuelLog, since, until time.Time) []model.FuelLog {
	if since.IsZero() && until.IsZero() {
		return logs
	}
	var result []model.FuelLog
	for _, l := range logs {
		if !since.IsZero() && l.Date.Before(since) {
			continue
		}
		if !until.IsZero() && !l.Date.Before(until) {
			continue
		}
		result = append(result, l)
	}
	return result
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
