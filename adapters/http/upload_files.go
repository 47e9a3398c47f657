package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranavsangichetty/portfolio/internal/application/usecase/upload"
	"github.com/pranavsangichetty/portfolio/pkg/apperror"
)

const uploadFormField = "files"

// formFile exposes a multipart file header as an upload.File.
type formFile struct {
	header *multipart.FileHeader
}

func (f formFile) Name() string { return f.header.Filename }

func (f formFile) ContentType() string { return f.header.Header.Get("Content-Type") }

func (f formFile) Open() (io.ReadCloser, error) { return f.header.Open() }

// selectedFiles returns the files sent in the "files" field, in the order they were sent.
// A form without that field is an empty selection.
func selectedFiles(c *gin.Context) ([]upload.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, apperror.NewInvalidInput("request must be multipart/form-data", err)
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apperror.NewPayloadTooLarge(maxErr.Error())
		}
		return nil, apperror.NewInvalidInput("invalid multipart form", err)
	}

	headers := form.File[uploadFormField]
	files := make([]upload.File, len(headers))
	for i, h := range headers {
		files[i] = formFile{header: h}
	}
	return files, nil
}
