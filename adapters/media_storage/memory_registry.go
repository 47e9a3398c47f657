package media_storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pranavsangichetty/portfolio/internal/application/service"
	"github.com/pranavsangichetty/portfolio/internal/config"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

// MemoryRegistry keeps uploaded files in process memory, keyed by a generated reference.
// References stop resolving when the process exits. The bytes held at once are capped by
// maxTotalSize.
type MemoryRegistry struct {
	mu           sync.RWMutex
	blobs        map[string]*service.Blob
	totalSize    int64
	prefix       string
	maxFileSize  int64
	maxTotalSize int64
	logger       logger.Logger
}

var (
	_ service.Uploader   = (*MemoryRegistry)(nil)
	_ service.BlobReader = (*MemoryRegistry)(nil)
)

func NewMemoryRegistry(cfg config.Config, log logger.Logger) *MemoryRegistry {
	prefix := cfg.Upload.BlobPath
	if prefix == "" {
		prefix = "/blobs/"
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &MemoryRegistry{
		blobs:        make(map[string]*service.Blob),
		prefix:       prefix,
		maxFileSize:  cfg.Upload.MaxFileSize,
		maxTotalSize: cfg.Upload.MaxTotalSize,
		logger:       log,
	}
}

func (r *MemoryRegistry) Upload(ctx context.Context, file io.Reader, name, contentType string) (string, error) {
	src := file
	if r.maxFileSize > 0 {
		src = io.LimitReader(file, r.maxFileSize+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return "", apperror.NewInternal(fmt.Sprintf("failed to read uploaded file '%s'", name), err)
	}
	if r.maxFileSize > 0 && int64(len(data)) > r.maxFileSize {
		return "", apperror.NewPayloadTooLarge(fmt.Sprintf("file '%s' exceeds %d bytes", name, r.maxFileSize))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ref := r.prefix + uuid.NewString()
	blob := &service.Blob{
		Ref:         ref,
		Name:        name,
		ContentType: contentType,
		Data:        data,
		CreatedAt:   time.Now().UTC(),
	}

	size := int64(len(data))
	r.mu.Lock()
	if r.maxTotalSize > 0 && r.totalSize+size > r.maxTotalSize {
		r.mu.Unlock()
		r.logger.Warn("Upload storage budget exhausted", zap.String("name", name), zap.Int64("size", size), zap.Int64("limit", r.maxTotalSize))
		return "", apperror.NewPayloadTooLarge(fmt.Sprintf("upload storage is full, '%s' was not stored", name))
	}
	r.blobs[ref] = blob
	r.totalSize += size
	r.mu.Unlock()

	r.logger.Debug("Registered upload", zap.String("ref", ref), zap.String("name", name), zap.Int("size", len(data)))
	return ref, nil
}

func (r *MemoryRegistry) Delete(ctx context.Context, ref string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if blob, ok := r.blobs[ref]; ok {
		r.totalSize -= int64(len(blob.Data))
		delete(r.blobs, ref)
	}
	return nil
}

func (r *MemoryRegistry) Open(ctx context.Context, ref string) (*service.Blob, error) {
	if !strings.HasPrefix(ref, r.prefix) {
		ref = r.prefix + strings.TrimPrefix(ref, "/")
	}

	r.mu.RLock()
	blob, ok := r.blobs[ref]
	r.mu.RUnlock()
	if !ok {
		return nil, apperror.NewNotFound("upload", ref)
	}
	return blob, nil
}

// IsEphemeral reports whether ref has the shape of a reference issued by this registry.
// It does not check that the reference still resolves.
func (r *MemoryRegistry) IsEphemeral(ref string) bool {
	rest, ok := strings.CutPrefix(ref, r.prefix)
	if !ok {
		return false
	}
	return uuid.Validate(rest) == nil
}

func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.blobs)
}

// Size returns the bytes currently held.
func (r *MemoryRegistry) Size() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.totalSize
}
