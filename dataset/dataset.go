// Package dataset loads and normalizes the daylight table: a CSV file
// with a header row naming a date column and a daylight-duration column
// in seconds, one row per day.
package dataset

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/avlae/solgrid/logging"
	"github.com/avlae/solgrid/model"
)

const (
	dateColumn    = "time"
	secondsColumn = "daylight_duration_s"

	dateFormat = "2006-01-02"
)

// Load reads the CSV file at path and returns the normalized, sorted day
// records. Any malformed row fails the whole load.
func Load(path string) ([]model.DayRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &model.MissingDataError{Path: path}
		}

		return nil, fmt.Errorf("could not open dataset %s: %w", path, err)
	}
	defer file.Close()

	rows, err := ReadRows(file)
	if err != nil {
		return nil, fmt.Errorf("could not read dataset %s: %w", path, err)
	}

	if len(rows) == 0 {
		return nil, &model.MissingDataError{Path: path}
	}

	slog.InfoContext(logging.PackageCtx("dataset"), "Loaded daylight rows", "path", path, "rows", len(rows))

	return Normalize(rows)
}

// ReadRows parses the CSV stream into raw rows. The header row is
// required; columns are matched by name so the collaborator's file may
// order or pad them freely.
func ReadRows(r io.Reader) ([]model.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("could not read header: %w", err)
	}

	dateIdx, secondsIdx := -1, -1

	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case dateColumn:
			dateIdx = i
		case secondsColumn:
			secondsIdx = i
		}
	}

	if dateIdx < 0 || secondsIdx < 0 {
		return nil, fmt.Errorf("header %v is missing %q or %q column", header, dateColumn, secondsColumn)
	}

	rows := make([]model.RawRow, 0, 366)
	line := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("could not read row: %w", err)
		}

		line++

		if dateIdx >= len(record) || secondsIdx >= len(record) {
			return nil, &model.ParseError{
				Line:  line,
				Field: "row",
				Value: strings.Join(record, ","),
				Cause: errors.New("too few columns"),
			}
		}

		rows = append(rows, model.RawRow{
			Date:    record[dateIdx],
			Seconds: record[secondsIdx],
			Line:    line,
		})
	}

	return rows, nil
}

// Normalize turns raw rows into typed day records sorted ascending by
// date: exactly one record per row, seconds converted to hours.
func Normalize(rows []model.RawRow) ([]model.DayRecord, error) {
	records := make([]model.DayRecord, 0, len(rows))

	for _, row := range rows {
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, &model.ParseError{Line: row.Line, Field: "date", Value: row.Date, Cause: err}
		}

		seconds, err := strconv.ParseFloat(strings.TrimSpace(row.Seconds), 64)
		if err != nil {
			return nil, &model.ParseError{Line: row.Line, Field: "duration", Value: row.Seconds, Cause: err}
		}

		records = append(records, model.NewDayRecord(date, seconds/3600))
	}

	slices.SortFunc(records, func(a, b model.DayRecord) int {
		return cmp.Compare(a.Date.Unix(), b.Date.Unix())
	})

	return records, nil
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(dateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD: %w", err)
	}

	return date, nil
}
