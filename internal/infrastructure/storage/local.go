package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-action-assistant/internal/domain/entities"
)

// LocalStore keeps scratch uploads in a directory on local disk
type LocalStore struct {
	dir    string
	logger *zap.Logger
}

// NewLocalStore creates dir if needed and returns a store rooted there
func NewLocalStore(dir string, logger *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, logger: logger}, nil
}

// Dir returns the scratch directory
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) path(name string) (string, error) {
	if !entities.ValidStoredName(name) {
		return "", entities.ErrInvalidUploadName
	}
	return filepath.Join(s.dir, name), nil
}

// Save writes r to the scratch directory under name. A partially written
// file is removed on failure.
func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	p, err := s.path(name)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, contextReader{ctx: ctx, r: r}); err != nil {
		f.Close()
		s.discard(p)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		s.discard(p)
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return p, nil
}

// Open returns a reader over the stored file
func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, entities.ErrUploadNotFound
	}

	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, entities.ErrUploadNotFound
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, entities.ErrUploadNotFound
	}

	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, entities.ErrUploadNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// Remove deletes the stored file
func (s *LocalStore) Remove(ctx context.Context, name string) error {
	p, err := s.path(name)
	if err != nil {
		return entities.ErrUploadNotFound
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entities.ErrUploadNotFound
		}
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

func (s *LocalStore) discard(p string) {
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) && s.logger != nil {
		s.logger.Warn("failed to remove partial upload", zap.String("path", p), zap.Error(err))
	}
}

// contextReader stops a copy once ctx is done
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
