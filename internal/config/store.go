package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultStoreFile is the settings file name in the working directory
const DefaultStoreFile = "config.json"

// Persisted is the folder/save path pair remembered between sessions
type Persisted struct {
	FolderID string `json:"folder_id"`
	SavePath string `json:"save_path"`
}

// Store reads and writes Persisted as JSON
type Store struct {
	path string
}

// NewStore creates a store backed by path
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultStoreFile
	}
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file. A missing file yields empty values and no
// error; a corrupt file yields empty values and the decode error so the
// caller can log it.
func (s *Store) Load() (Persisted, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Persisted{}, nil
		}
		return Persisted{}, fmt.Errorf("reading settings %s: %w", s.path, err)
	}

	var p Persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return Persisted{}, fmt.Errorf("decoding settings %s: %w", s.path, err)
	}
	return p, nil
}

// Save writes the settings file, creating its directory if needed
func (s *Store) Save(p Persisted) error {
	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating settings dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing settings %s: %w", s.path, err)
	}
	return nil
}
