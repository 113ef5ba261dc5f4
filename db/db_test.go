package db_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/avlae/solgrid/dataset"
	"github.com/avlae/solgrid/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStorage(t *testing.T) db.Storage {
	t.Helper()

	storage, err := db.NewStorageFromPath(filepath.Join(t.TempDir(), "daylight.sqlite"))
	require.NoError(t, err)
	t.Cleanup(storage.Close)

	return storage
}

func TestStoreAndGatherAll(t *testing.T) {
	storage := openTestStorage(t)

	require.NoError(t, storage.Store(time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC), 86400))
	require.NoError(t, storage.Store(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 21600))

	rows, err := storage.GatherAll()

	require.NoError(t, err)
	require.Len(t, rows, 2)
	// gathered in date order regardless of insert order
	assert.Equal(t, "2024-01-01", rows[0].Date)
	assert.Equal(t, "2024-06-21", rows[1].Date)
}

func TestStoreUpsertsSameDay(t *testing.T) {
	storage := openTestStorage(t)
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, storage.Store(day, 1000))
	require.NoError(t, storage.Store(day, 40000))

	rows, err := storage.GatherAll()

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "40000", rows[0].Seconds)
}

func TestGatheredRowsNormalize(t *testing.T) {
	storage := openTestStorage(t)

	require.NoError(t, storage.Store(time.Date(2024, time.December, 21, 0, 0, 0, 0, time.UTC), 0))
	require.NoError(t, storage.Store(time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC), 86400))

	rows, err := storage.GatherAll()
	require.NoError(t, err)

	records, err := dataset.Normalize(rows)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 24, records[0].RoundedHours)
	assert.Equal(t, 0, records[1].RoundedHours)
}
