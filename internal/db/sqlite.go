package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ParthebhanMedi/search-pubchem/internal/models"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite session database. It records what the user did
// (search history, saved downloads); it is never consulted to answer a
// query, so there is no response caching here.
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec(createSearchesTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create searches schema: %w", err)
	}

	if _, err := conn.Exec(createDownloadsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create downloads schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// RecordSearch appends one search action to the history log.
func (db *DB) RecordSearch(mode, query string, resultCount int) error {
	if _, err := db.conn.Exec(insertSearch, mode, query, resultCount); err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// RecentSearches returns the most recent history entries, newest first.
func (db *DB) RecentSearches(limit int) ([]models.SearchRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.conn.Query(selectRecentSearches, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query searches: %w", err)
	}
	defer rows.Close()

	var records []models.SearchRecord
	for rows.Next() {
		var r models.SearchRecord
		var executedAt string
		if err := rows.Scan(&r.ID, &r.Mode, &r.Query, &r.ResultCount, &executedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search row: %w", err)
		}
		if t, parseErr := time.Parse("2006-01-02 15:04:05", executedAt); parseErr == nil {
			r.ExecutedAt = t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// RecordDownload appends one saved file to the download log.
func (db *DB) RecordDownload(cid, format, filename string, size int) error {
	if _, err := db.conn.Exec(insertDownload, cid, format, filename, size); err != nil {
		return fmt.Errorf("failed to record download: %w", err)
	}
	return nil
}

// RecentDownloads returns the most recent download log entries, newest first.
func (db *DB) RecentDownloads(limit int) ([]models.DownloadRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.conn.Query(selectDownloads, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query downloads: %w", err)
	}
	defer rows.Close()

	var records []models.DownloadRecord
	for rows.Next() {
		var r models.DownloadRecord
		var savedAt string
		if err := rows.Scan(&r.ID, &r.CID, &r.Format, &r.Filename, &r.Bytes, &savedAt); err != nil {
			return nil, fmt.Errorf("failed to scan download row: %w", err)
		}
		if t, parseErr := time.Parse("2006-01-02 15:04:05", savedAt); parseErr == nil {
			r.SavedAt = t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
