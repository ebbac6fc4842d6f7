package storage

import (
	"context"
	"io"
	"time"
)

// BlobStore keeps uploaded logos and photos.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	URL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
