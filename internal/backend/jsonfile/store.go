// Package jsonfile implements the service.Service interface on a single
// JSON file in the config directory.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"please/internal/config"
	"please/internal/service"
	"please/internal/tasklist"
)

const (
	// FileMode is the permission of the record file.
	FileMode = 0600
)

// Store implements service.Service using a JSON file.
type Store struct {
	path   string
	logger *log.Logger
}

// New creates a store for the record file of cfg.
// The config directory is created if it doesn't exist.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDir(); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	return &Store{path: cfg.RecordPath(), logger: cfg.Log()}, nil
}

// Location implements service.Service.
func (s *Store) Location() string {
	return s.path
}

// Load implements service.Service.
// A missing or empty file is reported as service.ErrNotFound: an empty file
// is what an interrupted first-run setup leaves behind.
func (s *Store) Load(ctx context.Context) (service.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("no config file", "path", s.path)
			return service.Record{}, service.ErrNotFound
		}
		return service.Record{}, fmt.Errorf("read config file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.Debug("empty config file", "path", s.path)
		return service.Record{}, service.ErrNotFound
	}

	if causes, err := validate(data); err != nil || len(causes) > 0 {
		return service.Record{}, &service.ParseError{Path: s.path, Causes: causes, Err: err}
	}

	var rec service.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return service.Record{}, &service.ParseError{Path: s.path, Err: err}
	}
	if rec.Tasks == nil {
		rec.Tasks = tasklist.List{}
	}

	s.logger.Debug("loaded config", "path", s.path, "tasks", len(rec.Tasks))
	return rec, nil
}

// Save implements service.Service.
// The record is written to a temporary file in the same directory and
// renamed over the old one.
func (s *Store) Save(ctx context.Context, rec service.Record) error {
	if rec.Tasks == nil {
		rec.Tasks = tasklist.List{}
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}
	if err := os.Chmod(tmpPath, FileMode); err != nil {
		return fmt.Errorf("chmod config: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}

	s.logger.Debug("saved config", "path", s.path, "tasks", len(rec.Tasks))
	return nil
}
