package resume

import (
	"context"
	"errors"
	"strings"
)

// NewID marks a resume that has not been assigned a permanent id yet.
const NewID int64 = 0

type Resume struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

var (
	ErrTitleRequired = errors.New("title is required")
	ErrTypeRequired  = errors.New("type is required")
	ErrURLRequired   = errors.New("url is required")
)

// Blank is the template staged by "begin create".
func Blank() Resume {
	return Resume{ID: NewID}
}

func (r Resume) IsNew() bool {
	return r.ID == NewID
}

// Validate only checks required-field presence.
func (r Resume) Validate() error {
	switch {
	case strings.TrimSpace(r.Title) == "":
		return ErrTitleRequired
	case strings.TrimSpace(r.Type) == "":
		return ErrTypeRequired
	case strings.TrimSpace(r.URL) == "":
		return ErrURLRequired
	}
	return nil
}

type Repository interface {
	List(ctx context.Context) ([]Resume, error)
	FindByID(ctx context.Context, id int64) (*Resume, error)
	// Upsert replaces the resume with the same id in place, or appends it.
	Upsert(ctx context.Context, r Resume) error
	// Delete is a no-op when id is absent.
	Delete(ctx context.Context, id int64) error
}
