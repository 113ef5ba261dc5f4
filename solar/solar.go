// Package solar computes per-day daylight durations for a location, for
// building a daylight table without an external data file.
package solar

import (
	"time"

	"github.com/sixdouglas/suncalc"
)

const secondsPerDay = 86400.0

// DayLight is one computed day.
type DayLight struct {
	Date    time.Time
	Seconds float64
}

// DaylightSeconds returns the daylight duration for one calendar day at
// lat/lon. Above the polar circles sunrise/sunset can be undefined; the
// sun's altitude at solar noon then decides between a full midnight-sun
// day and a polar-night zero.
func DaylightSeconds(date time.Time, lat, lon float64) float64 {
	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC)

	times := suncalc.GetTimes(noon, lat, lon)
	sunrise := times[suncalc.Sunrise].Value
	sunset := times[suncalc.Sunset].Value

	if sunrise.IsZero() || sunset.IsZero() || !sunset.After(sunrise) {
		return polarExtreme(noon, lat, lon)
	}

	seconds := sunset.Sub(sunrise).Seconds()
	if seconds < 0 || seconds > secondsPerDay {
		return polarExtreme(noon, lat, lon)
	}

	return seconds
}

func polarExtreme(noon time.Time, lat, lon float64) float64 {
	if suncalc.GetPosition(noon, lat, lon).Altitude > 0 {
		return secondsPerDay
	}

	return 0
}

// Table computes one entry per calendar day of year. Leap years fall out
// of the date arithmetic naturally.
func Table(year int, lat, lon float64) []DayLight {
	days := make([]DayLight, 0, 366)

	for d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() == year; d = d.AddDate(0, 0, 1) {
		days = append(days, DayLight{
			Date:    d,
			Seconds: DaylightSeconds(d, lat, lon),
		})
	}

	return days
}
