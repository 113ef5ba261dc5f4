package solgrid

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/avlae/solgrid/hover"
	"github.com/avlae/solgrid/palette"
	cs "github.com/avlae/solgrid/web/components"
	"github.com/avlae/solgrid/web/routes"
	"github.com/spf13/cobra"
)

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:              "render",
	Short:            "Write the calendar to a file",
	Long:             `Load a daylight table once and write a standalone HTML page (or bare SVG) instead of serving it.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		records, err := loadRecords(inputPath, storagePath)
		if err != nil {
			return err
		}

		handler := routes.ServerHandler{
			Records: records,
			Layout:  layoutFromFlags(),
			Palette: palette.Default(),
			Hover:   hover.DefaultConfig(),
			Title:   title,
		}

		vm := handler.BuildCalendarVM()

		var buf bytes.Buffer

		if svgOnly {
			err = cs.CalendarSVG(vm).Render(context.Background(), &buf)
		} else {
			err = cs.Page(vm, hover.Script(handler.Hover, cs.TooltipID)).Render(context.Background(), &buf)
		}

		if err != nil {
			return fmt.Errorf("could not render calendar: %w", err)
		}

		if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("could not write %s: %w", outputPath, err)
		}

		slog.Info("Wrote calendar", "path", outputPath, "records", len(records), "bytes", buf.Len())

		return nil
	},
}

var (
	outputPath string
	svgOnly    bool
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&inputPath, "input", "i", "",
		"Path to the daylight CSV (columns: time, daylight_duration_s)")

	renderCmd.Flags().StringVarP(&storagePath, "storage", "s", "",
		"Path to the sqlite daylight store written by fetch")

	renderCmd.Flags().StringVarP(&outputPath, "out", "o", "./calendar.html",
		"Output path for the rendered page")

	renderCmd.Flags().BoolVar(&svgOnly, "svg-only", false,
		"Write only the bare SVG, no page scaffolding")

	renderCmd.Flags().IntVar(&columns, "columns", 0,
		"Tiles per row (default layout value when 0)")

	renderCmd.Flags().IntVar(&gutter, "gutter", -1,
		"Pixels between tiles (default layout value when negative)")

	renderCmd.Flags().StringVar(&title, "title", "Daylight calendar",
		"Page title")
}
