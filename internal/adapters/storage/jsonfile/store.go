// Package jsonfile persists each collection as a single pretty-printed
// JSON array file, the format existing data files already use. One Store
// guards one file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrCorrupt marks a file that exists but does not parse as a JSON
	// array. An absent file is NOT corrupt: it reads as an empty
	// collection. Overwriting a corrupt file would silently discard
	// whatever is in it, so reads fail instead.
	ErrCorrupt = errors.New("store file corrupt")
)

// Store is a whole-file JSON array store for records of type T.
//
// Every operation re-reads the file, so external edits between requests are
// picked up. The mutex serializes read-modify-write cycles within the
// process; a crash mid-write can still truncate the file (no journal).
type Store[T any] struct {
	mu   sync.Mutex
	path string
}

func NewStore[T any](path string) *Store[T] {
	return &Store[T]{path: path}
}

func (s *Store[T]) Path() string { return s.path }

// LoadAll returns every record in the file. An absent file is an empty
// collection, not an error.
func (s *Store[T]) LoadAll(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

// SaveAll overwrites the file with the given records.
func (s *Store[T]) SaveAll(ctx context.Context, records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx, records)
}

// Append loads, appends and rewrites under the store lock, so two
// concurrent Appends never lose a record.
func (s *Store[T]) Append(ctx context.Context, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	return s.saveLocked(ctx, append(records, record))
}

// UpdateFirst applies apply to the first record matching match and rewrites
// the file. Returns the updated record, or ErrNotFound without touching the
// file when nothing matches.
func (s *Store[T]) UpdateFirst(ctx context.Context, match func(T) bool, apply func(*T)) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadLocked(ctx)
	if err != nil {
		return zero, err
	}

	for i := range records {
		if !match(records[i]) {
			continue
		}
		apply(&records[i])
		if err := s.saveLocked(ctx, records); err != nil {
			return zero, err
		}
		return records[i], nil
	}

	return zero, ErrNotFound
}

func (s *Store[T]) loadLocked(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %s", s.path, ErrCorrupt, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (s *Store[T]) saveLocked(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
