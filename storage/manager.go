package storage

import (
	"log"
	"sync"
)

// BestScoreManager caches the best score in front of a Store
type BestScoreManager struct {
	mu     sync.Mutex
	store  Store
	best   int
	loaded bool
}

// NewBestScoreManager creates a manager, nil store keeps the score in memory
func NewBestScoreManager(store Store) *BestScoreManager {
	if store == nil {
		store = NewMemoryStore(0)
	}
	return &BestScoreManager{store: store}
}

// Retrieve returns the best score, loading it on first use
// Load errors are logged and read as 0
func (m *BestScoreManager) Retrieve() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadLocked()
	return m.best
}

// Store persists score unconditionally
func (m *BestScoreManager) Store(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(score); err != nil {
		return err
	}
	m.best = score
	m.loaded = true
	return nil
}

// Submit persists score only when it beats the best, reports whether it did
// The cached best is raised even when the save fails
func (m *BestScoreManager) Submit(score int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loadLocked()
	if score <= m.best {
		return false, nil
	}

	m.best = score
	if err := m.store.Save(score); err != nil {
		return true, err
	}
	return true, nil
}

func (m *BestScoreManager) loadLocked() {
	if m.loaded {
		return
	}
	m.loaded = true

	best, err := m.store.Load()
	if err != nil {
		log.Printf("best score unavailable, starting from 0: %v", err)
		return
	}
	m.best = best
}
