package http

import (
	"bytes"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranavsangichetty/portfolio/internal/application/service"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

// inlineTypes can be shown in the browser. Anything else is sent as a download.
var inlineTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
}

// BlobHandler serves uploaded files back while the process that received them runs.
type BlobHandler struct {
	blobs  service.BlobReader
	logger logger.Logger
}

func NewBlobHandler(blobs service.BlobReader, log logger.Logger) *BlobHandler {
	return &BlobHandler{blobs: blobs, logger: log}
}

func dispositionFor(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil && inlineTypes[mediaType] {
		return "inline"
	}
	return "attachment"
}

func (h *BlobHandler) ServeBlob(c *gin.Context) {
	blob, err := h.blobs.Open(c.Request.Context(), c.Param("ref"))
	if err != nil {
		c.Error(err)
		return
	}

	// Uploaded bytes must never run as active content on this origin.
	c.Header("Content-Type", blob.ContentType)
	c.Header("Content-Disposition", mime.FormatMediaType(dispositionFor(blob.ContentType), map[string]string{"filename": blob.Name}))
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Security-Policy", "sandbox")
	c.Header("Cache-Control", "private, no-store")
	http.ServeContent(c.Writer, c.Request, blob.Name, blob.CreatedAt, bytes.NewReader(blob.Data))
}
