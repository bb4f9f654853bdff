package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"cfp-portal/config"

	"github.com/google/uuid"
)

// Store persists uploaded submission files and hands back a reference the
// submission row keeps. Only the reference and the content hash are stored
// in the database.
type Store interface {
	Save(ctx context.Context, key string, r io.Reader) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// SubmissionKey builds the storage key for a new upload, bucketed by date
// the same way the upload directory always was.
func SubmissionKey() string {
	d := time.Now()
	return fmt.Sprintf("uploads/submissions/%04d/%02d/%02d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

// FromConfig picks the backend: S3 when a bucket is configured, local disk
// otherwise.
func FromConfig() (Store, error) {
	if config.S3_BUCKET != "" {
		return NewS3Store(config.S3_BUCKET, config.S3_REGION, config.S3_ENDPOINT, config.S3_ACCESS, config.S3_SECRET)
	}
	return NewLocalStore(config.UPLOAD_DIR)
}
