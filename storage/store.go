package storage

import (
	"errors"
	"sync"
)

// ErrNegativeScore is returned for scores below zero
var ErrNegativeScore = errors.New("storage: negative score")

// Store persists a single best-score value
type Store interface {
	// Load returns the stored score, 0 when nothing has been stored yet
	Load() (int, error)

	// Save replaces the stored score
	Save(score int) error
}

// ScoreDTO is the serializable best-score document
type ScoreDTO struct {
	BestScore int `toml:"best_score"`
}

// MemoryStore keeps the score in process, used in tests and when no path is configured
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
}

// NewMemoryStore creates a store holding initial
func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{score: initial}
}

// Load implements Store
func (s *MemoryStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score, nil
}

// Save implements Store
func (s *MemoryStore) Save(score int) error {
	if score < 0 {
		return ErrNegativeScore
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.score = score
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
