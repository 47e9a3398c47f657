package service

import (
	"context"
	"io"
	"time"
)

// Blob is an uploaded file held for the lifetime of the process.
type Blob struct {
	Ref         string
	Name        string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

// Uploader registers file bytes and hands back an ephemeral reference to them.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, name, contentType string) (string, error)
	Delete(ctx context.Context, ref string) error
}

// BlobReader resolves references issued by an Uploader.
type BlobReader interface {
	Open(ctx context.Context, ref string) (*Blob, error)
	IsEphemeral(ref string) bool
}
