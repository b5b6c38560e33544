package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const fileClientExtension = ".json"

// FileClient stores every key as its own file in a directory.
type FileClient struct {
	dir string
	ctx context.Context
}

// NewFileClient returns a FileClient storing files in dir. The directory is created on first write.
func NewFileClient(ctx context.Context, dir string) *FileClient {
	return &FileClient{dir: dir, ctx: ctx}
}

// Path returns the file backing key.
func (f *FileClient) Path(key string) string {
	return filepath.Join(f.dir, key+fileClientExtension)
}

// Set replaces the file of key with value.
func (f *FileClient) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", f.dir, err)
	}

	// rename over the old file, readers never see a partial value
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.Path(key)); err != nil {
		return fmt.Errorf("failed to replace %q: %w", f.Path(key), err)
	}
	return nil
}

// Get reads the file of key.
func (f *FileClient) Get(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	data, err := os.ReadFile(f.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", f.Path(key), err)
	}
	return string(data), nil
}

// Del removes the file of key. Missing files are not an error.
func (f *FileClient) Del(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := os.Remove(f.Path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %q: %w", f.Path(key), err)
	}
	return nil
}

func (f *FileClient) GetContext() context.Context {
	return f.ctx
}

// Ping checks that the directory is usable.
func (f *FileClient) Ping() error {
	return os.MkdirAll(f.dir, 0o755)
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}
