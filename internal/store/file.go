package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps a collection as a pretty-printed JSON array in one file.
// Every call reads or writes the whole file; nothing is cached.
type FileStore[T any] struct {
	path string
}

// NewFileStore returns a store backed by the JSON file at path. The file and
// its parent directories are created lazily on first use.
func NewFileStore[T any](path string) *FileStore[T] {
	return &FileStore[T]{path: path}
}

// Path returns the backing file path.
func (s *FileStore[T]) Path() string {
	return s.path
}

func (s *FileStore[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ensureFile(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, s.path, err)
	}

	all, err := Decode[T](data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	return all, nil
}

func (s *FileStore[T]) Replace(ctx context.Context, all []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ensureFile(); err != nil {
		return err
	}

	data, err := Encode(all, true)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrIO, s.path, err)
	}
	return writeAtomic(s.path, data)
}

// ensureFile creates the parent directory and an empty collection when the
// file does not exist yet. O_EXCL keeps a concurrent creator from truncating
// a file another caller has already replaced.
func (s *FileStore[T]) ensureFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: stat %s: %w", ErrIO, s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: create directory for %s: %w", ErrIO, s.path, err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("%w: create %s: %w", ErrIO, s.path, err)
	}
	if _, err := f.Write([]byte("[]\n")); err != nil {
		f.Close()
		return fmt.Errorf("%w: initialise %s: %w", ErrIO, s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: initialise %s: %w", ErrIO, s.path, err)
	}
	return nil
}

// writeAtomic writes data to a temp file beside path and renames it over path.
func writeAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file for %s: %w", ErrIO, path, err)
	}
	tmpPath := tmp.Name()

	cleanup := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s %s: %w", ErrIO, step, path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup("sync", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return cleanup("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: close temp file for %s: %w", ErrIO, path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: rename into %s: %w", ErrIO, path, err)
	}
	return nil
}
