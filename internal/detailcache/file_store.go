// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package detailcache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
)

// FileStore keeps the whole cache in one JSON document:
//
//	{"1145360": {"data": {...}, "cached_at": "2026-01-02T15:04:05Z"}, ...}
//
// Every Save rewrites the file through a temp file and rename so a crash
// mid-write never leaves a truncated document behind.
type FileStore struct {
	path string

	mu      sync.Mutex
	entries map[string]Entry
	// read is set once entries mirrors the document on disk; writes
	// before that merge into it instead of replacing it.
	read bool
}

// NewFileStore creates a store at path. Parent directories are created.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}
	return &FileStore{path: path, entries: make(map[string]Entry)}, nil
}

// LoadAll implements Store.
func (s *FileStore) LoadAll(_ context.Context) (map[int64]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.readLocked()
	if err != nil && !errors.Is(err, ErrCacheCorrupt) {
		return map[int64]Entry{}, err
	}
	s.entries = raw
	s.read = true

	out := make(map[int64]Entry, len(raw))
	for key, entry := range raw {
		if id, perr := strconv.ParseInt(key, 10, 64); perr == nil {
			out[id] = entry
		}
	}
	return out, err
}

// readLocked decodes the document. A missing or empty file is an empty
// map; an undecodable one is an empty map and ErrCacheCorrupt.
func (s *FileStore) readLocked() (map[string]Entry, error) {
	entries := make(map[string]Entry)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return entries, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return entries, nil
	}

	var raw map[string]Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return entries, fmt.Errorf("%w: %s: %w", ErrCacheCorrupt, s.path, err)
	}
	for key, entry := range raw {
		if _, err := strconv.ParseInt(key, 10, 64); err == nil {
			entries[key] = entry
		}
	}
	return entries, nil
}

// ensureReadLocked pulls the on-disk document into entries before the
// first write, so a Save that races the cache's initial Load keeps the
// warm entries. A corrupt document is replaced.
func (s *FileStore) ensureReadLocked() error {
	if s.read {
		return nil
	}
	raw, err := s.readLocked()
	if err != nil && !errors.Is(err, ErrCacheCorrupt) {
		return err
	}
	for key, entry := range s.entries {
		raw[key] = entry
	}
	s.entries = raw
	s.read = true
	return nil
}

// Save implements Store.
func (s *FileStore) Save(_ context.Context, id int64, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureReadLocked(); err != nil {
		return err
	}
	s.entries[strconv.FormatInt(id, 10)] = entry
	return s.flushLocked()
}

// Delete implements Store.
func (s *FileStore) Delete(_ context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureReadLocked(); err != nil {
		return err
	}
	for _, id := range ids {
		delete(s.entries, strconv.FormatInt(id, 10))
	}
	return s.flushLocked()
}

// flushLocked rewrites the whole document (must be called with mu held).
func (s *FileStore) flushLocked() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Name implements Store.
func (s *FileStore) Name() string { return "file" }

// Close implements Store.
func (s *FileStore) Close() error { return nil }
