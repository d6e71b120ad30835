// Package stats tracks usage totals and the last searched directory. Totals
// live in memory unless a stats file is configured, in which case they are
// kept in that JSON file between runs.
package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lumipallolabs/hashseek/internal/model"
)

// Stats holds persistent statistics
type Stats struct {
	Searches     int    `json:"searches"`
	FilesHashed  int64  `json:"files_hashed"`
	MatchesFound int64  `json:"matches_found"`
	LastRoot     string `json:"last_root,omitempty"` // Root of the most recent completed search
}

// Manager handles loading and saving stats
type Manager struct {
	path         string
	stats        Stats
	mu           sync.RWMutex
	dirty        bool
	saveTimer    *time.Timer
	saveDuration time.Duration
}

// NewManager creates a stats manager backed by path. An empty path keeps
// the totals in memory only.
func NewManager(path string) *Manager {
	return &Manager{
		path:         path,
		saveDuration: 2 * time.Second, // Debounce saves
	}
}

// Path returns the file the manager reads and writes, or "" in memory mode
func (m *Manager) Path() string {
	return m.path
}

// Persistent reports whether totals are written to disk
func (m *Manager) Persistent() bool {
	return m.path != ""
}

// Load loads stats from disk
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.path == "" {
		return nil
	}
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			// No stats file yet, start fresh
			m.stats = Stats{}
			return nil
		}
		return err
	}

	return json.Unmarshal(data, &m.stats)
}

// Save saves stats to disk immediately
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saveLocked()
}

// saveLocked saves stats without acquiring the lock (caller must hold lock)
func (m *Manager) saveLocked() error {
	if m.path == "" {
		m.dirty = false
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m.stats, "", "  ")
	if err != nil {
		return err
	}

	m.dirty = false
	return os.WriteFile(m.path, data, 0644)
}

// Snapshot returns a copy of the current totals
func (m *Manager) Snapshot() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats
}

// LastRoot returns the root of the most recent completed search
func (m *Manager) LastRoot() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats.LastRoot
}

// RecordHash counts one hashed file and schedules a debounced save
func (m *Manager) RecordHash() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.FilesHashed++
	m.scheduleSaveLocked()
}

// RecordSearch folds a completed search into the totals and schedules a
// debounced save
func (m *Manager) RecordSearch(res *model.ScanResult) {
	if res == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.Searches++
	m.stats.FilesHashed += int64(res.FilesHashed)
	m.stats.MatchesFound += int64(len(res.Matches))
	m.stats.LastRoot = res.Root
	m.scheduleSaveLocked()
}

func (m *Manager) scheduleSaveLocked() {
	if m.path == "" {
		return
	}
	m.dirty = true

	// Cancel any pending save timer
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.saveDuration, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.dirty {
			_ = m.saveLocked() // Ignore errors for background save
		}
	})
}

// Close ensures any pending saves are written
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}

	if m.dirty {
		return m.saveLocked()
	}
	return nil
}
