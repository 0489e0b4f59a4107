// Package filestore persists uploaded album covers on the local filesystem
// and serves them back under a public URL prefix.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/config"
)

// Store writes cover images to a directory on disk. File names are generated
// server-side, so client-supplied names never touch the filesystem.
type Store struct {
	dir     string
	baseURL string
}

// New creates the upload directory if needed and returns a store.
func New(cfg config.UploadConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Store{
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// SupportedContentType reports whether the store accepts the given MIME type.
func SupportedContentType(contentType string) bool {
	_, ok := extByContentType[contentType]
	return ok
}

// Save writes the cover to disk and returns the public URL path it will be
// served under.
func (s *Store) Save(r io.Reader, contentType string) (string, error) {
	ext, ok := extByContentType[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create cover file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write cover file: %w", err)
	}

	return path.Join(s.baseURL, name), nil
}

// Dir returns the directory covers are stored in, for the static file server.
func (s *Store) Dir() string {
	return s.dir
}
