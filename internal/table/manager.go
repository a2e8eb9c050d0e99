package table

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"sync"
	"time"

	"gametools/internal/storage"
)

// Manager manages all active tables.
type Manager struct {
	mu      sync.RWMutex
	tables  map[string]*Table
	presets *Registry
	store   *storage.Store
}

// NewManager creates a table manager.
func NewManager(presets *Registry, store *storage.Store) *Manager {
	return &Manager{
		tables:  make(map[string]*Table),
		presets: presets,
		store:   store,
	}
}

// Create makes a new table from a preset and persists it.
func (m *Manager) Create(presetName string) (*Table, error) {
	p, ok := m.presets.Get(presetName)
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s", presetName)
	}
	code := generateCode()
	if err := m.store.CreateTable(code, presetName); err != nil {
		return nil, fmt.Errorf("persist table: %w", err)
	}
	t := NewTable(code, p)
	m.mu.Lock()
	m.tables[code] = t
	m.mu.Unlock()
	return t, nil
}

// Get returns a table by code.
func (m *Manager) Get(code string) (*Table, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tables[code]
	return t, ok
}

// List returns info for all active tables.
func (m *Manager) List() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()
	infos := make([]Info, 0, len(m.tables))
	for _, t := range m.tables {
		infos = append(infos, t.Info())
	}
	return infos
}

// SaveState persists the table's status and apparatus snapshot.
func (m *Manager) SaveState(t *Table) error {
	t.mu.RLock()
	status := t.Status
	t.mu.RUnlock()

	if err := m.store.UpdateTableStatus(t.Code, string(status)); err != nil {
		return err
	}
	data, err := t.MarshalState()
	if err != nil {
		return fmt.Errorf("marshal table state: %w", err)
	}
	return m.store.SaveTableState(t.Code, string(data))
}

// Restore loads tables from the database on startup.
func (m *Manager) Restore() error {
	rows, err := m.store.ListTables("")
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	for _, row := range rows {
		if row.Status == string(StatusClosed) {
			continue
		}
		p, ok := m.presets.Get(row.Preset)
		if !ok {
			log.Printf("skipping table %s: unknown preset %s", row.Code, row.Preset)
			continue
		}
		t := NewTable(row.Code, p)

		stateJSON, err := m.store.GetTableState(row.Code)
		if err == nil {
			if err := t.RestoreState([]byte(stateJSON)); err != nil {
				log.Printf("skipping table %s: restore error: %v", row.Code, err)
				continue
			}
		}

		m.mu.Lock()
		m.tables[row.Code] = t
		m.mu.Unlock()
	}
	return nil
}

// Remove deletes a table from memory and storage.
func (m *Manager) Remove(code string) {
	m.mu.Lock()
	delete(m.tables, code)
	m.mu.Unlock()
	m.store.DeleteTable(code)
}

// CleanupLoop removes stale tables periodically.
func (m *Manager) CleanupLoop(interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		m.cleanup(maxAge)
	}
}

func (m *Manager) cleanup(maxAge time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for code, t := range m.tables {
		t.mu.RLock()
		empty := len(t.Watchers) == 0
		closed := t.Status == StatusClosed
		t.mu.RUnlock()

		if closed || empty {
			row, err := m.store.GetTable(code)
			if err != nil {
				delete(m.tables, code)
				continue
			}
			if now.Sub(row.CreatedAt) > maxAge || empty {
				log.Printf("cleaning up table %s", code)
				m.store.DeleteTable(code)
				delete(m.tables, code)
			}
		}
	}
}

func generateCode() string {
	b := make([]byte, 3) // 6 hex chars
	rand.Read(b)
	return hex.EncodeToString(b)
}
