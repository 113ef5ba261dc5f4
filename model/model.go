package model

import (
	"math"
	"time"
)

// Season classifies a day by its rounded daylight hours.
type Season int

const (
	SeasonPolarNight Season = iota
	SeasonInBetween
	SeasonMidnightSun
)

func (s Season) String() string {
	switch s {
	case SeasonPolarNight:
		return "polar night"
	case SeasonMidnightSun:
		return "midnight sun"
	default:
		return "in-between"
	}
}

// RawRow is one untyped input row as it came off the wire (CSV cell text
// or a storage row), before normalization. Line is the 1-based source
// line, kept for error reporting.
type RawRow struct {
	Date    string
	Seconds string
	Line    int
}

// DayRecord is one calendar day of the dataset. Immutable after
// normalization; derived colors are computed downstream and passed
// alongside, never written back.
type DayRecord struct {
	Date         time.Time
	RawHours     float64
	RoundedHours int
}

// NewDayRecord derives the rounded-hours field from raw hours,
// clamping the result into [0, 24].
func NewDayRecord(date time.Time, rawHours float64) DayRecord {
	rounded := int(math.Round(rawHours))
	if rounded < 0 {
		rounded = 0
	}
	if rounded > 24 {
		rounded = 24
	}

	return DayRecord{Date: date, RawHours: rawHours, RoundedHours: rounded}
}

// Season classifies the record from its rounded hours.
func (r DayRecord) Season() Season {
	switch r.RoundedHours {
	case 0:
		return SeasonPolarNight
	case 24:
		return SeasonMidnightSun
	default:
		return SeasonInBetween
	}
}
