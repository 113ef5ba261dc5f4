// Package palette maps daylight hours to tile fill colors and picks a
// contrasting text color for tile labels.
package palette

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the immutable color configuration for one render. The two
// season extremes get flat colors; everything in between is interpolated
// on the GradientLow..GradientHigh ramp.
type Palette struct {
	PolarNight   colorful.Color
	MidnightSun  colorful.Color
	GradientLow  colorful.Color
	GradientHigh colorful.Color

	DarkText  string
	LightText string

	// LightnessCutoff is the Lab L value (0..1) above which a fill is
	// considered light enough to need dark label text.
	LightnessCutoff float64
}

// Default returns the stock palette: deep navy for polar night, warm
// near-white for midnight sun, and a blue-to-amber ramp in between.
func Default() Palette {
	return Palette{
		PolarNight:      mustHex("#0b132b"),
		MidnightSun:     mustHex("#fdf6d8"),
		GradientLow:     mustHex("#27496d"),
		GradientHigh:    mustHex("#f7c948"),
		DarkText:        "#1b2430",
		LightText:       "#f4f4f2",
		LightnessCutoff: 0.65,
	}
}

// ColorFor maps one day's daylight to a fill color. Rounded hours pick
// the flat extreme colors; raw hours drive the gradient otherwise.
//
// The interpolation parameter maps raw hours 1..23 onto the full ramp,
// saturating at those bounds rather than at 0/24 so the flat extreme
// colors stay visually distinct from the gradient ends.
func (p Palette) ColorFor(roundedHours int, rawHours float64) colorful.Color {
	switch roundedHours {
	case 0:
		return p.PolarNight
	case 24:
		return p.MidnightSun
	}

	t := clamp01((rawHours - 1) / 22)

	// LuvLCh is a cylindrical Lab-derived space; blending there avoids
	// the muddy midpoints a straight RGB lerp produces.
	return p.GradientLow.BlendLuvLCh(p.GradientHigh, t).Clamped()
}

// TextColorFor picks the label color that contrasts with fill. The Lab
// lightness threshold is a fixed heuristic tuned for this palette, not a
// general contrast-ratio computation.
func (p Palette) TextColorFor(fill colorful.Color) string {
	l, _, _ := fill.Lab()
	if l > p.LightnessCutoff {
		return p.DarkText
	}

	return p.LightText
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}

	return t
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}

	return c
}
