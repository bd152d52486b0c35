//go:build wasm

package storage

import (
	"errors"
	"fmt"
	"strconv"
	"syscall/js"
)

// LocalStorageKey is the window.localStorage entry holding the score
const LocalStorageKey = "best_score"

var errNoLocalStorage = errors.New("storage: window.localStorage unavailable")

// BrowserStore keeps the best score in window.localStorage
type BrowserStore struct {
	key string
}

// NewBrowserStore creates a store using key
func NewBrowserStore(key string) *BrowserStore {
	return &BrowserStore{key: key}
}

// DefaultStore returns the platform store, localStorage in the browser
// The path is unused because the page origin scopes the entry
func DefaultStore(path string) Store {
	return NewBrowserStore(LocalStorageKey)
}

func localStorage() (js.Value, error) {
	ls := js.Global().Get("localStorage")
	if ls.IsUndefined() || ls.IsNull() {
		return js.Value{}, errNoLocalStorage
	}
	return ls, nil
}

// Load reads the score, a missing entry is 0
func (s *BrowserStore) Load() (int, error) {
	ls, err := localStorage()
	if err != nil {
		return 0, err
	}

	v := ls.Call("getItem", s.key)
	if v.IsNull() || v.IsUndefined() {
		return 0, nil
	}

	score, err := strconv.Atoi(v.String())
	if err != nil {
		return 0, fmt.Errorf("load best score: %w", err)
	}
	if score < 0 {
		return 0, ErrNegativeScore
	}
	return score, nil
}

// Save writes the score as a decimal string
func (s *BrowserStore) Save(score int) error {
	if score < 0 {
		return ErrNegativeScore
	}
	ls, err := localStorage()
	if err != nil {
		return err
	}
	ls.Call("setItem", s.key, strconv.Itoa(score))
	return nil
}
