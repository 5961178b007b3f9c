// Package sqlite persists normalized records into a local SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/darkmeter/stealer-parsers/credentials"
	"github.com/darkmeter/stealer-parsers/records"
)

const schema = `
CREATE TABLE IF NOT EXISTS system_information (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	device_id TEXT NOT NULL,
	source_file TEXT NOT NULL,
	stealer_type TEXT NOT NULL,
	os TEXT,
	ip_address TEXT,
	username TEXT,
	cpu TEXT,
	ram TEXT,
	computer_name TEXT,
	gpu TEXT,
	country TEXT,
	hwid TEXT,
	file_path TEXT,
	antivirus TEXT,
	log_date TEXT,
	log_time TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS stored_credentials (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	device_id TEXT NOT NULL,
	url TEXT NOT NULL,
	username TEXT NOT NULL,
	password TEXT NOT NULL,
	browser TEXT,
	domain TEXT,
	tld TEXT,
	file_path TEXT
);
CREATE INDEX IF NOT EXISTS idx_credentials_domain ON stored_credentials(domain);
`

// Store writes records to a SQLite file. Safe for concurrent use; the
// driver serializes writers.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Open creates or opens the database at path and ensures the schema exists.
func Open(path string, log *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSystemInformation inserts one system record. Empty optional fields are
// stored as NULL.
func (s *Store) SaveSystemInformation(deviceID string, info *records.SystemInfo, sourceFileName string) error {
	_, err := s.db.Exec(`INSERT INTO system_information
		(device_id, source_file, stealer_type, os, ip_address, username, cpu,
		 ram, computer_name, gpu, country, hwid, file_path, antivirus,
		 log_date, log_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		deviceID, sourceFileName, info.StealerType,
		nullable(info.OS), nullable(info.IPAddress), nullable(info.Username),
		nullable(info.CPU), nullable(info.RAM), nullable(info.ComputerName),
		nullable(info.GPU), nullable(info.Country), nullable(info.HWID),
		nullable(info.FilePath), nullable(info.Antivirus),
		nullable(info.LogDate), info.LogTime)
	if err != nil {
		return fmt.Errorf("failed to insert system information: %w", err)
	}
	return nil
}

// SaveCredentials inserts a batch of credential records in one transaction.
// Passwords and usernames are escaped on the way in; oversized usernames are
// truncated and logged.
func (s *Store) SaveCredentials(deviceID string, creds []records.CredentialRecord) error {
	if len(creds) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO stored_credentials
		(device_id, url, username, password, browser, domain, tld, file_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range creds {
		tu := credentials.TruncateUsername(c.Username)
		if tu.WasTruncated {
			s.log.Warn("username truncated",
				"url", c.URL,
				"original_length", tu.OriginalLength,
				"max_length", credentials.MaxUsernameLength)
		}
		_, err := stmt.Exec(deviceID, c.URL,
			credentials.Escape(tu.Value), credentials.Escape(c.Password),
			nullable(c.Browser), nullable(c.Domain), nullable(c.TLD),
			nullable(c.FilePath))
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert credential: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit credentials: %w", err)
	}
	return nil
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
