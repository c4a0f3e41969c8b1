// Package prefs persists local user preferences to a small JSON state file.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sfaram/vidgrid/internal/models"
)

// state is the on-disk shape.
type state struct {
	Theme string `json:"theme,omitempty"`
}

// Store reads and writes the preference file. The zero value of every
// preference is returned when the file does not exist.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a preference store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Theme returns the persisted theme, or light when the file is missing or
// holds no theme. A file that exists but cannot be parsed is an error so
// callers can log it.
func (s *Store) Theme() (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return models.ThemeLight, err
	}
	return models.ParseTheme(st.Theme), nil
}

// SetTheme persists the theme for the next session load.
func (s *Store) SetTheme(t models.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		// Overwrite a corrupt file rather than failing every toggle.
		st = state{}
	}
	st.Theme = string(t)
	return s.save(st)
}

func (s *Store) load() (state, error) {
	var st state
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return st, nil
		}
		return st, fmt.Errorf("read prefs: %w", err)
	}
	if len(data) == 0 {
		return st, nil
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("decode prefs: %w", err)
	}
	return st, nil
}

// save writes the state file atomically (tmp file + rename).
func (s *Store) save(st state) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename prefs: %w", err)
	}
	return nil
}
