package port

import (
	"context"
	"io"
)

// UploadInput carries one attachment body and its destination key.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput describes a stored attachment object.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage abstracts the attachment store. Reads go through
// presigned URLs; the API never proxies attachment bytes.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
