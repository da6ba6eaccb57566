// Package catalog implements the flat-file catalog stores. Each collection
// is one JSON array file rewritten whole on every mutation; a per-collection
// mutex serializes writers so concurrent requests cannot lose updates.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/duelport/cardvault/internal/store"
)

// collection wraps one JSON array file. Reads load the whole file; writes
// replace it atomically via a temp file and rename, so a failed write leaves
// the previous on-disk state untouched.
type collection[T any] struct {
	path string
	mu   sync.Mutex
}

func newCollection[T any](path string) *collection[T] {
	return &collection[T]{path: path}
}

// read loads and decodes the entire collection.
func (c *collection[T]) read(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrStorage, err)
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", store.ErrStorage, filepath.Base(c.path), err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", store.ErrStorage, filepath.Base(c.path), err)
	}

	return records, nil
}

// write replaces the collection file with the given records. The temp file
// is created in the same directory so the rename stays on one filesystem.
func (c *collection[T]) write(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrStorage, err)
	}

	// Two-space indentation, matching the files the store was seeded with.
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", store.ErrStorage, filepath.Base(c.path), err)
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", store.ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %v", store.ErrStorage, filepath.Base(c.path), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: closing %s: %v", store.ErrStorage, filepath.Base(c.path), err)
	}

	if err := os.Rename(tmpName, c.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %v", store.ErrStorage, filepath.Base(c.path), err)
	}

	return nil
}

// update runs one read-modify-write cycle under the collection mutex.
// The function receives the current records and returns the records to
// persist; returning an error aborts without touching the file.
func (c *collection[T]) update(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return c.write(ctx, updated)
}
