// Package components renders the calendar page. The SVG is assembled
// into a strings.Builder and wrapped as a templ component so handlers
// can buffer-render it like any other view.
package components

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// TooltipID is the DOM id of the tooltip overlay; the hover script looks
// it up by this id.
const TooltipID = "tooltip"

// CalendarSVG renders the tile grid as an inline SVG.
func CalendarSVG(vm *CalendarVM) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildSVG(vm))

		return err
	})
}

func buildSVG(vm *CalendarVM) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		vm.SurfaceWidth, vm.SurfaceHeight, vm.SurfaceWidth, vm.SurfaceHeight))
	sb.WriteString(fmt.Sprintf(
		`  <style>.lbl{font-family:%s;font-size:%dpx;opacity:0;pointer-events:none;text-anchor:middle;dominant-baseline:central}</style>`+"\n",
		vm.FontFamily, vm.FontSize))
	sb.WriteString(fmt.Sprintf(`  <g transform="translate(%d,%d)">`+"\n", vm.Margin, vm.Margin))

	for _, tile := range vm.Tiles {
		sb.WriteString(fmt.Sprintf(
			`    <g class="day" data-season="%s" data-hours="%s" data-extra="%s" data-date="%s">`+"\n",
			html.EscapeString(tile.Season), html.EscapeString(tile.Hours),
			html.EscapeString(tile.Extra), html.EscapeString(tile.Date)))
		sb.WriteString(fmt.Sprintf(
			`      <rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			tile.X, tile.Y, tile.Width, tile.Height, tile.Fill, vm.StrokeDefault))
		sb.WriteString(fmt.Sprintf(
			`      <text class="lbl" x="%d" y="%d" fill="%s">%s</text>`+"\n",
			tile.X+tile.Width/2, tile.Y+tile.Height/2,
			tile.TextColor, html.EscapeString(tile.Label)))
		sb.WriteString("    </g>\n")
	}

	sb.WriteString("  </g>\n</svg>")

	return sb.String()
}

// Legend renders the swatch row under the calendar.
func Legend(entries []LegendEntry) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var sb strings.Builder

		sb.WriteString(`<div class="legend">` + "\n")

		for _, e := range entries {
			sb.WriteString(fmt.Sprintf(
				`  <span class="swatch"><i style="background:%s"></i>%s</span>`+"\n",
				e.Color, html.EscapeString(e.Label)))
		}

		sb.WriteString("</div>")

		_, err := io.WriteString(w, sb.String())

		return err
	})
}

// Page renders the full HTML document: styles, heading, the SVG, the
// tooltip overlay and the hover script.
func Page(vm *CalendarVM, hoverScript string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder

		sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		sb.WriteString(`<meta charset="utf-8"/>` + "\n")
		sb.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(vm.Title)))
		sb.WriteString(pageStyle(vm))
		sb.WriteString("</head>\n<body>\n")
		sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(vm.Title)))

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}

		if err := CalendarSVG(vm).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}

		if err := Legend(vm.Legend).Render(ctx, w); err != nil {
			return err
		}

		tail := fmt.Sprintf("\n<div id=%q></div>\n<script>%s</script>\n</body>\n</html>\n",
			TooltipID, hoverScript)

		_, err := io.WriteString(w, tail)

		return err
	})
}

func pageStyle(vm *CalendarVM) string {
	return fmt.Sprintf(`<style>
body{font-family:%s;background:#14181f;color:#e8e8e8;margin:24px}
h1{font-size:18px;font-weight:600}
.legend{margin-top:12px;font-size:13px}
.swatch{margin-right:16px}
.swatch i{display:inline-block;width:12px;height:12px;margin-right:5px;vertical-align:-1px}
#%s{position:absolute;opacity:0;pointer-events:none;background:#000c;color:#fff;
padding:6px 9px;border-radius:4px;font-size:12px;line-height:1.45;white-space:nowrap}
</style>
`, vm.FontFamily, TooltipID)
}
