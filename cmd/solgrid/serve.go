package solgrid

import (
	"log/slog"

	"github.com/avlae/solgrid/hover"
	"github.com/avlae/solgrid/metrics"
	"github.com/avlae/solgrid/palette"
	"github.com/avlae/solgrid/web"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:              "serve",
	Short:            "Serve the interactive daylight calendar",
	Long:             `Load a daylight table and serve the calendar page, the bare SVG and Prometheus metrics over HTTP.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		collector := metrics.NewCollector("solgrid")

		records, err := loadRecords(inputPath, storagePath)
		if err != nil {
			collector.DatasetLoadErrors.Inc()

			return err
		}

		slog.Info("Loaded daylight table", "records", len(records))

		return web.StartServer(port, web.Options{
			Records: records,
			Layout:  layoutFromFlags(),
			Palette: palette.Default(),
			Hover:   hover.DefaultConfig(),
			Title:   title,
		}, collector)
	},
}

var (
	inputPath   string
	storagePath string
	port        int
	columns     int
	gutter      int
	title       string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&inputPath, "input", "i", "",
		"Path to the daylight CSV (columns: time, daylight_duration_s)")

	serveCmd.Flags().StringVarP(&storagePath, "storage", "s", "",
		"Path to the sqlite daylight store written by fetch")

	serveCmd.Flags().IntVarP(&port, "port", "p", 9000,
		"Port on which server should be watching")

	serveCmd.Flags().IntVar(&columns, "columns", 0,
		"Tiles per row (default layout value when 0)")

	serveCmd.Flags().IntVar(&gutter, "gutter", -1,
		"Pixels between tiles (default layout value when negative)")

	serveCmd.Flags().StringVar(&title, "title", "Daylight calendar",
		"Page title")
}
