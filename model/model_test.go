package model_test

import (
	"testing"
	"time"

	"github.com/avlae/solgrid/model"
	"github.com/stretchr/testify/assert"
)

func TestNewDayRecordRounding(t *testing.T) {
	date := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     float64
		rounded int
	}{
		{name: "rounds down", raw: 10.49, rounded: 10},
		{name: "rounds up", raw: 10.5, rounded: 11},
		{name: "zero stays zero", raw: 0, rounded: 0},
		{name: "full day", raw: 24.0, rounded: 24},
		{name: "clamps above full day", raw: 24.4, rounded: 24},
		{name: "clamps below zero", raw: -0.6, rounded: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := model.NewDayRecord(date, tt.raw)
			assert.Equal(t, tt.rounded, rec.RoundedHours)
			assert.Equal(t, tt.raw, rec.RawHours)
		})
	}
}

func TestSeason(t *testing.T) {
	date := time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, model.SeasonPolarNight, model.NewDayRecord(date, 0).Season())
	assert.Equal(t, model.SeasonMidnightSun, model.NewDayRecord(date, 24).Season())
	assert.Equal(t, model.SeasonInBetween, model.NewDayRecord(date, 12.3).Season())

	assert.Equal(t, "polar night", model.SeasonPolarNight.String())
	assert.Equal(t, "midnight sun", model.SeasonMidnightSun.String())
	assert.Equal(t, "in-between", model.SeasonInBetween.String())
}
