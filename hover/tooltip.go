package hover

import (
	"fmt"
	"math"

	"github.com/avlae/solgrid/model"
)

// Content is the tooltip text for one day. Extra is empty except at the
// season extremes.
type Content struct {
	Season string
	Hours  string
	Extra  string
	Date   string
}

// Tooltip builds the tooltip content for one day record.
func Tooltip(rec model.DayRecord) Content {
	season := rec.Season()

	c := Content{
		Season: season.String(),
		Date: fmt.Sprintf("%s, %s %02d",
			rec.Date.Weekday(), rec.Date.Month(), rec.Date.Day()),
	}

	switch season {
	case model.SeasonPolarNight:
		c.Hours = fmt.Sprintf("%d h daylight", rec.RoundedHours)
		c.Extra = "no sunrise"
	case model.SeasonMidnightSun:
		c.Hours = fmt.Sprintf("%d h daylight", rec.RoundedHours)
		c.Extra = "no sunset"
	default:
		c.Hours = FormatHoursHM(rec.RawHours) + " daylight"
	}

	return c
}

// FormatHoursHM renders fractional hours as "{h}h {mm}m", dropping the
// hour part at zero hours and the minute part at zero minutes. Total
// minutes are rounded and clamped into [0, 1440].
func FormatHoursHM(rawHours float64) string {
	minutes := int(math.Round(rawHours * 60))
	if minutes < 0 {
		minutes = 0
	}
	if minutes > 1440 {
		minutes = 1440
	}

	h, m := minutes/60, minutes%60

	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %02dm", h, m)
	}
}
