package certificate

import "context"

type Certificate struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Repository is append-only: certificates are never edited or removed.
type Repository interface {
	List(ctx context.Context) ([]Certificate, error)
	Append(ctx context.Context, certs []Certificate) error
}
