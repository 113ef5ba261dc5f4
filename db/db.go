// Package db persists daylight tables in sqlite so a fetched year can be
// served without recomputing or re-reading the source file.
package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/avlae/solgrid/model"

	_ "github.com/mattn/go-sqlite3"
)

const dateFormat = "2006-01-02"

// Storage stores and retrieves one daylight row per calendar day.
// Retrieval yields untyped rows so they flow through the same
// normalization path as file input.
type Storage interface {
	Store(date time.Time, seconds float64) error
	GatherAll() ([]model.RawRow, error)
	Close()
}

type SQLiteStorage struct {
	db *sql.DB
}

func initSchema(db *sql.DB) error {
	sqlStmt := `
	create table if not exists daylight(date text primary key, seconds real) without rowid;`

	if _, err := db.Exec(sqlStmt); err != nil {
		return fmt.Errorf("could not init schema: %w", err)
	}

	return nil
}

// NewStorageFromPath opens (or creates) the sqlite file at path.
func NewStorageFromPath(path string) (Storage, error) {
	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite file %s: %w", path, err)
	}

	if err := initSchema(database); err != nil {
		database.Close()

		return nil, err
	}

	return &SQLiteStorage{database}, nil
}

// Store upserts one day. Re-fetching a year overwrites in place.
func (s *SQLiteStorage) Store(date time.Time, seconds float64) error {
	_, err := s.db.Exec(
		`insert into daylight(date, seconds) values(?, ?)
		 on conflict(date) do update set seconds = excluded.seconds`,
		date.Format(dateFormat), seconds)
	if err != nil {
		return fmt.Errorf("could not store day %s: %w", date.Format(dateFormat), err)
	}

	return nil
}

func (s *SQLiteStorage) GatherAll() ([]model.RawRow, error) {
	rows, err := s.db.Query(`select date, seconds from daylight order by date`)
	if err != nil {
		return nil, fmt.Errorf("could not gather daylight rows: %w", err)
	}
	defer rows.Close()

	result := make([]model.RawRow, 0, 366)
	line := 1

	for rows.Next() {
		var date string
		var seconds float64

		if err := rows.Scan(&date, &seconds); err != nil {
			return nil, fmt.Errorf("could not scan daylight row: %w", err)
		}

		line++

		result = append(result, model.RawRow{
			Date:    date,
			Seconds: strconv.FormatFloat(seconds, 'f', -1, 64),
			Line:    line,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate daylight rows: %w", err)
	}

	return result, nil
}

func (s *SQLiteStorage) Close() {
	s.db.Close()
}
