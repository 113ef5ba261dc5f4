package solgrid

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/avlae/solgrid/db"
	"github.com/avlae/solgrid/solar"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// fetchCmd represents the fetch command.
var fetchCmd = &cobra.Command{
	Use:              "fetch",
	Short:            "Compute a year's daylight table for a location",
	Long:             `Compute daylight durations for every day of a year at the given latitude and longitude, and store them in the sqlite store and/or a CSV file usable as serve input.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		if fetchStorage == "" && csvOut == "" {
			return fmt.Errorf("nothing to do: provide --storage and/or --csv-out")
		}

		days := solar.Table(year, latitude, longitude)
		slog.Info("Computed daylight table", "year", year, "days", len(days), "lat", latitude, "lon", longitude)

		if fetchStorage != "" {
			storage, err := db.NewStorageFromPath(fetchStorage)
			if err != nil {
				return fmt.Errorf("could not open %s as sqlite file: %w", fetchStorage, err)
			}
			defer storage.Close()

			bar := progressbar.Default(int64(len(days)), "Storing daylight table...")

			for _, day := range days {
				if err := storage.Store(day.Date, day.Seconds); err != nil {
					return err
				}

				_ = bar.Add(1)
			}
		}

		if csvOut != "" {
			if err := writeCSV(csvOut, days); err != nil {
				return err
			}

			slog.Info("Wrote daylight CSV", "path", csvOut)
		}

		return nil
	},
}

func writeCSV(path string, days []solar.DayLight) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"time", "daylight_duration_s"}); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	for _, day := range days {
		record := []string{
			day.Date.Format("2006-01-02"),
			strconv.FormatFloat(day.Seconds, 'f', 0, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("could not write row for %s: %w", record[0], err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("could not flush %s: %w", path, err)
	}

	return nil
}

var (
	latitude     float64
	longitude    float64
	year         int
	fetchStorage string
	csvOut       string
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().Float64Var(&latitude, "lat", 69.65,
		"Latitude of the location")

	fetchCmd.Flags().Float64Var(&longitude, "lon", 18.96,
		"Longitude of the location")

	fetchCmd.Flags().IntVar(&year, "year", 2024,
		"Year to compute")

	fetchCmd.Flags().StringVarP(&fetchStorage, "storage", "s", "./daylight.sqlite",
		"Output path for the sqlite daylight store")

	fetchCmd.Flags().StringVar(&csvOut, "csv-out", "",
		"Optional path to also write the table as CSV")
}
