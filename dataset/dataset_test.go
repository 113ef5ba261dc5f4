package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avlae/solgrid/dataset"
	"github.com/avlae/solgrid/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRowsMatchesColumnsByName(t *testing.T) {
	input := "station,daylight_duration_s,time\noslo,43200,2024-03-01\noslo,45000,2024-03-02\n"

	rows, err := dataset.ReadRows(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-01", rows[0].Date)
	assert.Equal(t, "43200", rows[0].Seconds)
	assert.Equal(t, 2, rows[0].Line)
}

func TestReadRowsRejectsMissingColumns(t *testing.T) {
	_, err := dataset.ReadRows(strings.NewReader("date,seconds\n2024-01-01,100\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "daylight_duration_s")
}

func TestNormalizeSortsByDate(t *testing.T) {
	rows := []model.RawRow{
		{Date: "2024-06-21", Seconds: "86400", Line: 2},
		{Date: "2024-01-01", Seconds: "21600", Line: 3},
		{Date: "2024-03-10", Seconds: "40000", Line: 4},
	}

	records, err := dataset.Normalize(rows)

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-01-01", records[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-03-10", records[1].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-06-21", records[2].Date.Format("2006-01-02"))
}

func TestNormalizeDerivesHours(t *testing.T) {
	records, err := dataset.Normalize([]model.RawRow{
		{Date: "2024-06-21", Seconds: "86400", Line: 2},
		{Date: "2024-12-21", Seconds: "0", Line: 3},
		{Date: "2024-03-05", Seconds: "36900", Line: 4},
	})

	require.NoError(t, err)

	assert.Equal(t, 24, records[1].RoundedHours)
	assert.Equal(t, model.SeasonMidnightSun, records[1].Season())

	assert.Equal(t, 0, records[2].RoundedHours)
	assert.Equal(t, model.SeasonPolarNight, records[2].Season())

	assert.InDelta(t, 10.25, records[0].RawHours, 1e-9)
	assert.Equal(t, 10, records[0].RoundedHours)
}

func TestNormalizeFailsWholeLoadOnBadRow(t *testing.T) {
	tests := []struct {
		name string
		row  model.RawRow
	}{
		{name: "bad date", row: model.RawRow{Date: "2024-13-01", Seconds: "100", Line: 5}},
		{name: "garbage date", row: model.RawRow{Date: "yesterday", Seconds: "100", Line: 6}},
		{name: "non-numeric duration", row: model.RawRow{Date: "2024-01-01", Seconds: "lots", Line: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []model.RawRow{
				{Date: "2024-01-01", Seconds: "3600", Line: 2},
				tt.row,
			}

			records, err := dataset.Normalize(rows)

			require.Error(t, err)
			assert.Nil(t, records)

			var parseErr *model.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.row.Line, parseErr.Line)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "nope.csv"))

	var missing *model.MissingDataError
	require.ErrorAs(t, err, &missing)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	_, err := dataset.Load(path)

	var missing *model.MissingDataError
	require.ErrorAs(t, err, &missing)
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daylight.csv")
	content := "time,daylight_duration_s\n2024-06-21,86400\n2024-12-21,0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := dataset.Load(path)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 24, records[0].RoundedHours)
	assert.Equal(t, 0, records[1].RoundedHours)
}
