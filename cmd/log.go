package cmd

import (
	"fmt"
	"time"

	"fcab/internal/cli"
	"fcab/internal/model"

	"github.com/spf13/cobra"
)

var (
	logBus      string
	logDriver   string
	logStation  string
	logLiters   float64
	logPrice    float64
	logOdometer float64
	logDate     string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a bus refuel",
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVar(&logBus, "bus-id", "", "Bus ID (required)")
	logCmd.Flags().StringVar(&logDriver, "driver", "", "Driver name (required)")
	logCmd.Flags().StringVar(&logStation, "station", "", "Fuel station (required)")
	logCmd.Flags().Float64Var(&logLiters, "liters", 0, "Liters filled (required)")
	logCmd.Flags().Float64Var(&logPrice, "price", 0, "Price per liter (required)")
	logCmd.Flags().Float64Var(&logOdometer, "odometer", 0, "Odometer reading in km (required)")
	logCmd.Flags().StringVar(&logDate, "date", "", "Date as YYYY-MM-DD (default: today)")

	logCmd.MarkFlagRequired("bus-id")
	logCmd.MarkFlagRequired("driver")
	logCmd.MarkFlagRequired("station")
	logCmd.MarkFlagRequired("liters")
	logCmd.MarkFlagRequired("price")
	logCmd.MarkFlagRequired("odometer")

	rootCmd.AddCommand(logCmd)
}

// parseDateFlag accepts YYYY-MM-DD, with an empty string meaning now.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

func runLog(_ *cobra.Command, _ []string) error {
	date, err := parseDateFlag(logDate)
	if err != nil {
		return err
	}

	led, st, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := led.AddFuelLog(model.FuelLog{
		BusID:         logBus,
		Driver:        logDriver,
		Station:       logStation,
		Liters:        logLiters,
		PricePerLiter: logPrice,
		Odometer:      logOdometer,
		Date:          date,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Logged refuel for %s: %s at %s (%s)\n",
		rec.BusID, cli.FormatLiters(rec.Liters), rec.Station, cli.FormatMoney(rec.TotalCost))
	return nil
}
