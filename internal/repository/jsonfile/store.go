// Package jsonfile persists the tracker to a flat JSON data file and a sibling settings file.
//
// Every repository call is a full read-modify-write of the file. A process-local mutex
// serialises calls; writers in other processes are not arbitrated.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"talktrack/internal/domain"
)

// fileData is the on-disk layout of the data file.
type fileData struct {
	Version     int                  `json:"version"`
	Events      []*domain.Event      `json:"events"`
	Sessions    []*domain.Session    `json:"sessions"`
	Submissions []*domain.Submission `json:"submissions"`
}

// Store owns the data and settings files.
type Store struct {
	path         string
	settingsPath string
	mu           sync.Mutex
}

// NewStore returns a Store for the given data file. When settingsPath is empty the
// settings live in settings.json next to the data file.
func NewStore(path, settingsPath string) *Store {
	if settingsPath == "" {
		settingsPath = filepath.Join(filepath.Dir(path), "settings.json")
	}
	return &Store{path: path, settingsPath: settingsPath}
}

// Path returns the data file location.
func (s *Store) Path() string { return s.path }

// load reads and migrates the data file. A missing file is an empty store.
func (s *Store) load() (*fileData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &fileData{
				Version:     domain.SchemaVersion,
				Events:      []*domain.Event{},
				Sessions:    []*domain.Session{},
				Submissions: []*domain.Submission{},
			}, nil
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}
	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode data file: %w", err)
	}
	migrate(&data)
	return &data, nil
}

// save writes data atomically via a temp file in the same directory.
func (s *Store) save(data *fileData) error {
	data.Version = domain.SchemaVersion
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	return writeAtomic(s.path, raw)
}

func writeAtomic(path string, raw []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".talktrack-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// view runs fn against a freshly loaded copy of the data.
func (s *Store) view(ctx context.Context, fn func(*fileData) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return err
	}
	return fn(data)
}

// update runs fn against the loaded data and saves it when fn succeeds.
func (s *Store) update(ctx context.Context, fn func(*fileData) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(data); err != nil {
		return err
	}
	return s.save(data)
}

// Snapshot returns a copy of all three collections read in one pass.
func (s *Store) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	err := s.view(ctx, func(d *fileData) error {
		snap = domain.Snapshot{Events: d.Events, Sessions: d.Sessions, Submissions: d.Submissions}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
