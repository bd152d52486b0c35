//go:build !wasm

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileStore keeps the best score in a small TOML file
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path, the file is created on first save
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStore returns the platform store, a TOML file at path
// An empty path keeps the score in memory only
func DefaultStore(path string) Store {
	if path == "" {
		return NewMemoryStore(0)
	}
	return NewFileStore(path)
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the score, a missing file is 0
func (s *FileStore) Load() (int, error) {
	var dto ScoreDTO
	if _, err := toml.DecodeFile(s.path, &dto); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("load best score %s: %w", s.path, err)
	}
	if dto.BestScore < 0 {
		return 0, fmt.Errorf("load best score %s: %w", s.path, ErrNegativeScore)
	}
	return dto.BestScore, nil
}

// Save writes the score through a temp file and rename
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return ErrNegativeScore
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("save best score: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".best-*.toml")
	if err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	tmpName := tmp.Name()

	if err := toml.NewEncoder(tmp).Encode(ScoreDTO{BestScore: score}); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save best score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save best score: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save best score: %w", err)
	}
	return nil
}
