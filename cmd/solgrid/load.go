package solgrid

import (
	"errors"
	"fmt"

	"github.com/avlae/solgrid/dataset"
	"github.com/avlae/solgrid/db"
	"github.com/avlae/solgrid/grid"
	"github.com/avlae/solgrid/model"
)

// loadRecords reads the daylight table from the CSV input when given,
// otherwise from the sqlite store populated by the fetch command.
func loadRecords(inputPath, storagePath string) ([]model.DayRecord, error) {
	if inputPath != "" {
		records, err := dataset.Load(inputPath)
		if err != nil {
			return nil, fmt.Errorf("could not load dataset: %w", err)
		}

		return records, nil
	}

	if storagePath == "" {
		return nil, errors.New("either --input or --storage must be provided")
	}

	storage, err := db.NewStorageFromPath(storagePath)
	if err != nil {
		return nil, fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
	}
	defer storage.Close()

	rows, err := storage.GatherAll()
	if err != nil {
		return nil, fmt.Errorf("could not read stored daylight table: %w", err)
	}

	if len(rows) == 0 {
		return nil, &model.MissingDataError{Path: storagePath}
	}

	records, err := dataset.Normalize(rows)
	if err != nil {
		return nil, fmt.Errorf("could not normalize stored rows: %w", err)
	}

	return records, nil
}

// layoutFromFlags applies the flag overrides onto the default layout.
func layoutFromFlags() grid.Layout {
	layout := grid.DefaultLayout()

	if columns > 0 {
		layout.Columns = columns
	}

	if gutter >= 0 {
		layout.Gutter = gutter
	}

	return layout
}
