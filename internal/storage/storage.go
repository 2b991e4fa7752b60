package storage

import (
	"context"
	"errors"
)

// Object is an uploaded file as seen by callers: the key the bucket assigned
// and the public URL to view it.
type Object struct {
	Key string
	URL string
}

// Storage uploads image files to a remote bucket. The media service falls
// back to inline data URIs when an upload fails, so implementations should
// fail fast rather than retry indefinitely.
type Storage interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (*Object, error)
}

// Disabled is the Storage used when no bucket is configured: every upload
// fails immediately, which routes all images through the inline fallback.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, string, []byte) (*Object, error) {
	return nil, errors.New("bucket storage not configured")
}
