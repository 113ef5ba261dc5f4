package hover_test

import (
	"testing"
	"time"

	"github.com/avlae/solgrid/hover"
	"github.com/avlae/solgrid/model"
	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, date string, rawHours float64) model.DayRecord {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", date)
	assert.NoError(t, err)

	return model.NewDayRecord(parsed, rawHours)
}

func TestFormatHoursHM(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want string
	}{
		{name: "zero", raw: 0, want: "0m"},
		{name: "whole hour", raw: 1.0, want: "1h"},
		{name: "hours and minutes", raw: 5.25, want: "5h 15m"},
		{name: "minutes only", raw: 0.5, want: "30m"},
		{name: "single digit minutes padded", raw: 2.1, want: "2h 06m"},
		{name: "near full day clamps inside 24h", raw: 23.99, want: "23h 59m"},
		{name: "full day", raw: 24.0, want: "24h"},
		{name: "over full day clamps", raw: 24.7, want: "24h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hover.FormatHoursHM(tt.raw))
		})
	}
}

func TestTooltipMidnightSun(t *testing.T) {
	c := hover.Tooltip(day(t, "2024-06-21", 24.0))

	assert.Equal(t, "midnight sun", c.Season)
	assert.Equal(t, "24 h daylight", c.Hours)
	assert.Equal(t, "no sunset", c.Extra)
	assert.Equal(t, "Friday, June 21", c.Date)
}

func TestTooltipPolarNight(t *testing.T) {
	c := hover.Tooltip(day(t, "2024-12-21", 0))

	assert.Equal(t, "polar night", c.Season)
	assert.Equal(t, "0 h daylight", c.Hours)
	assert.Equal(t, "no sunrise", c.Extra)
	assert.Equal(t, "Saturday, December 21", c.Date)
}

func TestTooltipInBetween(t *testing.T) {
	c := hover.Tooltip(day(t, "2024-03-05", 10.25))

	assert.Equal(t, "in-between", c.Season)
	assert.Equal(t, "10h 15m daylight", c.Hours)
	assert.Empty(t, c.Extra)
	assert.Equal(t, "Tuesday, March 05", c.Date)
}
