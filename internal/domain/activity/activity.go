package activity

import (
	"context"
	"time"
)

type EventType string

const (
	EventResumeSaved       EventType = "resume.saved"
	EventResumeDeleted     EventType = "resume.deleted"
	EventProjectsAdded     EventType = "projects.added"
	EventCertificatesAdded EventType = "certificates.added"
)

// Event describes a completed content store mutation.
type Event struct {
	Type       EventType `json:"event_type"`
	Collection string    `json:"collection"`
	Category   string    `json:"category,omitempty"`
	IDs        []int64   `json:"ids"`
	OccurredAt time.Time `json:"occurred_at"`
}

func New(t EventType, collection string, ids ...int64) Event {
	return Event{Type: t, Collection: collection, IDs: ids, OccurredAt: time.Now().UTC()}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}
