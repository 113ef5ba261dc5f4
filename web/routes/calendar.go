package routes

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/avlae/solgrid/hover"
	cs "github.com/avlae/solgrid/web/components"
)

// BuildCalendarVM builds the view model for the calendar page. Colors
// are resolved here, once per record, and handed to every consumer as
// part of the tile, so label contrast and tooltip rendering never
// recompute them.
func (s *ServerHandler) BuildCalendarVM() *cs.CalendarVM {
	geo := s.Layout.Geometry(len(s.Records))
	tiles := make([]cs.Tile, 0, len(s.Records))

	for i, rec := range s.Records {
		x, y, _, _ := geo.CellAt(i)

		fill := s.Palette.ColorFor(rec.RoundedHours, rec.RawHours)
		tip := hover.Tooltip(rec)

		tiles = append(tiles, cs.Tile{
			X:      x,
			Y:      y,
			Width:  geo.TileWidth,
			Height: geo.TileHeight,

			Fill:      fill.Hex(),
			TextColor: s.Palette.TextColorFor(fill),
			Label:     s.Layout.WeekdayLetters[int(rec.Date.Weekday())],

			Season: tip.Season,
			Hours:  tip.Hours,
			Extra:  tip.Extra,
			Date:   tip.Date,
		})
	}

	return &cs.CalendarVM{
		Title:         s.Title,
		SurfaceWidth:  s.Layout.SurfaceWidth,
		SurfaceHeight: s.Layout.SurfaceHeight,
		Margin:        s.Layout.Margin,
		FontFamily:    s.Layout.FontFamily,
		FontSize:      s.Layout.FontSize,
		StrokeDefault: s.Hover.StrokeDefault,
		Tiles:         tiles,
		Legend:        s.buildLegend(),
	}
}

func (s *ServerHandler) buildLegend() []cs.LegendEntry {
	return []cs.LegendEntry{
		{Color: s.Palette.PolarNight.Hex(), Label: "polar night"},
		{Color: s.Palette.ColorFor(4, 4).Hex(), Label: "4h"},
		{Color: s.Palette.ColorFor(12, 12).Hex(), Label: "12h"},
		{Color: s.Palette.ColorFor(20, 20).Hex(), Label: "20h"},
		{Color: s.Palette.MidnightSun.Hex(), Label: "midnight sun"},
	}
}

// CalendarHandle serves the interactive calendar page.
func (s *ServerHandler) CalendarHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling calendar page request")

	vm := s.BuildCalendarVM()
	script := hover.Script(s.Hover, cs.TooltipID)

	_ = SafeRenderTemplate(cs.Page(vm, script), w)
}

// SVGHandle serves the bare calendar SVG for embedding elsewhere.
func (s *ServerHandler) SVGHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling calendar SVG request")

	var buf bytes.Buffer
	if err := cs.CalendarSVG(s.BuildCalendarVM()).Render(context.Background(), &buf); err != nil {
		slog.Error("Failed to render SVG", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write SVG response", "error", err)
	}
}

// HealthHandle reports liveness.
func (s *ServerHandler) HealthHandle(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
