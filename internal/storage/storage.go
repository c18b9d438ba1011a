// Package storage persists uploaded file bytes. The local backend writes to
// the content directory served at /uploads/; the s3 backend targets any
// S3-compatible bucket.
package storage

import (
	"context"
	"io"
)

type BlobStorage interface {
	// Save writes the blob under the given name and returns the path a
	// client can later fetch it from.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	// Remove deletes a previously saved blob. Used to clean up when the
	// metadata record fails to persist after the bytes were written.
	Remove(ctx context.Context, name string) error
}
