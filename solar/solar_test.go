package solar_test

import (
	"testing"
	"time"

	"github.com/avlae/solgrid/solar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	osloLat = 59.91
	osloLon = 10.75

	tromsoLat = 69.65
	tromsoLon = 18.96
)

func TestTableLength(t *testing.T) {
	assert.Len(t, solar.Table(2023, osloLat, osloLon), 365)
	assert.Len(t, solar.Table(2024, osloLat, osloLon), 366)
}

func TestTableCoversWholeYear(t *testing.T) {
	days := solar.Table(2024, osloLat, osloLon)

	require.NotEmpty(t, days)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), days[len(days)-1].Date)
}

func TestDaylightSeasonality(t *testing.T) {
	june := solar.DaylightSeconds(time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC), osloLat, osloLon)
	dec := solar.DaylightSeconds(time.Date(2024, time.December, 21, 0, 0, 0, 0, time.UTC), osloLat, osloLon)

	// Oslo midsummer is far longer than midwinter, neither is a polar extreme
	assert.Greater(t, june, dec)
	assert.Greater(t, june, 16*3600.0)
	assert.Less(t, dec, 8*3600.0)
	assert.Greater(t, dec, 0.0)
}

func TestDaylightBounds(t *testing.T) {
	for _, lat := range []float64{osloLat, tromsoLat} {
		for month := time.January; month <= time.December; month++ {
			s := solar.DaylightSeconds(time.Date(2024, month, 15, 0, 0, 0, 0, time.UTC), lat, osloLon)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 86400.0)
		}
	}
}

func TestPolarExtremes(t *testing.T) {
	// Tromsø sits above the arctic circle: no sunset near midsummer,
	// no sunrise near midwinter.
	midsummer := solar.DaylightSeconds(time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC), tromsoLat, tromsoLon)
	midwinter := solar.DaylightSeconds(time.Date(2024, time.December, 21, 0, 0, 0, 0, time.UTC), tromsoLat, tromsoLon)

	assert.InDelta(t, 86400.0, midsummer, 1)
	assert.InDelta(t, 0.0, midwinter, 1)
}
