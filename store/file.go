package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// fileDoc is the on-disk JSON layout
type fileDoc struct {
	Values map[string]string `json:"values"`
	Runs   []Run             `json:"runs"`
}

// File persists the store as a single JSON document, rewritten atomically on every change
type File struct {
	mu   sync.Mutex
	path string
	doc  fileDoc
}

// OpenFile loads path, a missing file starts empty
func OpenFile(path string) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	f := &File{path: filepath.Clean(path), doc: fileDoc{Values: make(map[string]string)}}
	data, err := os.ReadFile(f.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return f, nil
	case err != nil:
		return nil, fmt.Errorf("read store %s: %w", f.path, err)
	}

	if err := json.Unmarshal(data, &f.doc); err != nil {
		return nil, fmt.Errorf("parse store %s: %w", f.path, err)
	}
	if f.doc.Values == nil {
		f.doc.Values = make(map[string]string)
	}
	return f, nil
}

func (f *File) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.doc.Values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doc.Values[key] = value
	return f.flush()
}

func (f *File) AppendRun(_ context.Context, run Run) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doc.Runs = append(f.doc.Runs, run)
	return f.flush()
}

func (f *File) RecentRuns(_ context.Context, limit int) ([]Run, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return recent(f.doc.Runs, limit), nil
}

func (f *File) Close() error { return nil }

// flush writes to a temp file and renames it over the target, caller holds f.mu
func (f *File) flush() error {
	data, err := json.MarshalIndent(f.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
