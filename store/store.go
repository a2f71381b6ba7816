// Package store persists exported document artifacts.
//
// A Store writes a named artifact and returns its location identifier: an
// absolute path for the local store, "bucket/key" for object storage.
package store

import "context"

// Store writes a named artifact. Save either fully succeeds and returns the
// artifact's location, or fails leaving nothing visible under the name.
// Implementations must be safe for concurrent use.
type Store interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}
