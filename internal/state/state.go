package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/panes/internal/errmsg"
)

const (
	appName      = "panes"
	dbFileName   = "panes.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager is a string key/value store for panel sizes. Reads and writes go
// through an in-memory copy so a Set is visible to the next Get at once;
// writes reach SQLite after saveDebounce of quiet, and on Close.
type Manager struct {
	db *sql.DB

	mu        sync.Mutex
	values    map[string]string
	pending   map[string]string
	saveTimer *time.Timer
}

// Open opens the store in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the store at dbPath, creating it when missing.
func OpenPath(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	values, err := loadSizes(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", errmsg.OpSizeLoad, err)
	}

	return &Manager{
		db:      db,
		values:  values,
		pending: make(map[string]string),
	}, nil
}

// Get implements resize.Store.
func (m *Manager) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Set implements resize.Store.
func (m *Manager) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	m.pending[key] = value

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		if err := m.Flush(); err != nil {
			log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpSizeSave, err))
		}
	})
}

// Flush writes pending values to the database.
func (m *Manager) Flush() error {
	m.mu.Lock()
	pending := m.pending
	m.pending = make(map[string]string)
	m.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	return saveSizes(m.db, pending, time.Now())
}

// Close flushes pending values and closes the database.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.mu.Unlock()

	flushErr := m.Flush()
	if err := m.db.Close(); err != nil {
		return err
	}
	return flushErr
}

// DB returns the underlying database handle.
func (m *Manager) DB() *sql.DB {
	return m.db
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
