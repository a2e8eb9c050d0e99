package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// TableRow represents a table in the database.
type TableRow struct {
	Code      string
	Preset    string
	Status    string // "open", "closed"
	CreatedAt time.Time
}

// Store handles SQLite persistence.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database and runs migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// WAL mode for better concurrent reads
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS tables (
			code       TEXT PRIMARY KEY,
			preset     TEXT NOT NULL,
			status     TEXT NOT NULL DEFAULT 'open',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS table_state (
			table_code TEXT PRIMARY KEY REFERENCES tables(code),
			state_json TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

// CreateTable inserts a new table row.
func (s *Store) CreateTable(code, preset string) error {
	_, err := s.db.Exec(
		"INSERT INTO tables (code, preset, status) VALUES (?, ?, 'open')",
		code, preset,
	)
	return err
}

// GetTable retrieves a table by code.
func (s *Store) GetTable(code string) (*TableRow, error) {
	row := s.db.QueryRow("SELECT code, preset, status, created_at FROM tables WHERE code = ?", code)
	var tr TableRow
	if err := row.Scan(&tr.Code, &tr.Preset, &tr.Status, &tr.CreatedAt); err != nil {
		return nil, err
	}
	return &tr, nil
}

// UpdateTableStatus changes a table's status.
func (s *Store) UpdateTableStatus(code, status string) error {
	_, err := s.db.Exec("UPDATE tables SET status = ? WHERE code = ?", status, code)
	return err
}

// ListTables returns all tables with the given status (or all if
// status is empty).
func (s *Store) ListTables(status string) ([]TableRow, error) {
	var rows *sql.Rows
	var err error
	if status == "" {
		rows, err = s.db.Query("SELECT code, preset, status, created_at FROM tables ORDER BY created_at DESC")
	} else {
		rows, err = s.db.Query("SELECT code, preset, status, created_at FROM tables WHERE status = ? ORDER BY created_at DESC", status)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []TableRow
	for rows.Next() {
		var tr TableRow
		if err := rows.Scan(&tr.Code, &tr.Preset, &tr.Status, &tr.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, tr)
	}
	return result, rows.Err()
}

// SaveTableState upserts a table's state snapshot JSON.
func (s *Store) SaveTableState(tableCode, stateJSON string) error {
	_, err := s.db.Exec(`
		INSERT INTO table_state (table_code, state_json, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(table_code) DO UPDATE SET state_json = excluded.state_json, updated_at = excluded.updated_at
	`, tableCode, stateJSON)
	return err
}

// GetTableState retrieves a table's state snapshot JSON.
func (s *Store) GetTableState(tableCode string) (string, error) {
	var stateJSON string
	err := s.db.QueryRow("SELECT state_json FROM table_state WHERE table_code = ?", tableCode).Scan(&stateJSON)
	return stateJSON, err
}

// DeleteTable removes a table and its state snapshot.
func (s *Store) DeleteTable(code string) error {
	_, err := s.db.Exec("DELETE FROM table_state WHERE table_code = ?", code)
	if err != nil {
		return err
	}
	_, err = s.db.Exec("DELETE FROM tables WHERE code = ?", code)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
