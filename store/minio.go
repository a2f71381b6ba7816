package store

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
)

var _ Store = (*Minio)(nil)

// Minio writes artifacts to an S3-compatible bucket.
type Minio struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinio creates an object store writing into bucket. prefix is prepended
// to every artifact key (e.g. "exports/").
func NewMinio(client *minio.Client, bucket, prefix string) *Minio {
	return &Minio{client: client, bucket: bucket, prefix: prefix}
}

// Save uploads data under the prefixed key and returns "bucket/key".
func (m *Minio) Save(ctx context.Context, name string, data []byte) (string, error) {
	key := path.Join(m.prefix, name)

	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("uploading artifact: %w", err)
	}

	return m.bucket + "/" + key, nil
}
