package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

var _ Store = (*Local)(nil)

// Local writes artifacts into a single directory. Writes are atomic: data
// goes to a temporary file in the target directory and is renamed into place
// only after a successful sync, so no partial file is ever visible under the
// final name.
type Local struct {
	dir string
}

// NewLocal creates a local store rooted at dir, creating the directory if
// needed.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving store directory: %w", err)
	}
	return &Local{dir: abs}, nil
}

// Save writes data under name and returns the absolute path of the artifact.
// The store is flat; names with path separators are rejected.
func (l *Local) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid artifact name %q", name)
	}

	tmp, err := os.CreateTemp(l.dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing artifact: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("syncing artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing artifact: %w", err)
	}

	dest := filepath.Join(l.dir, name)
	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("publishing artifact: %w", err)
	}

	return dest, nil
}
