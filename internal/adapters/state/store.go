// Package state persists the most recent generation's info in a flat JSON
// file. One run generates one script, so the store remembers a single entry
// and a Put for a new script path replaces the previous one.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/fbgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.GenerationStore.
type Store struct {
	path string
	mu   sync.RWMutex
	info *domain.GenerationInfo
}

// NewStore creates a new GenerationStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{path: filepath.Clean(path)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read generation store")
	}
	if len(data) == 0 {
		return nil
	}
	var info domain.GenerationInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return zerr.Wrap(err, "failed to unmarshal generation store")
	}
	if info.ScriptPath != "" {
		s.info = &info
	}
	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.info, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal generation store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for generation store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write generation store")
	}
	return nil
}

// Get retrieves the remembered generation info when it belongs to the given
// script path. A different or unknown path yields nil without error.
func (s *Store) Get(scriptPath string) (*domain.GenerationInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.info == nil || s.info.ScriptPath != scriptPath {
		return nil, nil
	}
	info := *s.info
	return &info, nil
}

// Put stores the generation info, replacing whatever was remembered before.
func (s *Store) Put(info domain.GenerationInfo) error {
	s.mu.Lock()
	s.info = &info
	s.mu.Unlock()

	return s.save()
}
