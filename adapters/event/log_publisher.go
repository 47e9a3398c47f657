package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/pranavsangichetty/portfolio/internal/domain/activity"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

// LogPublisher writes activity events to the log. Used when no brokers are configured.
type LogPublisher struct {
	logger logger.Logger
}

func NewLogPublisher(log logger.Logger) *LogPublisher {
	return &LogPublisher{logger: log}
}

func (p *LogPublisher) Publish(ctx context.Context, e activity.Event) error {
	p.logger.Info("Content activity", ActivityFields(e)...)
	return nil
}

// ActivityFields renders e as structured log fields.
func ActivityFields(e activity.Event) []zap.Field {
	fields := []zap.Field{
		zap.String("event_type", string(e.Type)),
		zap.String("collection", e.Collection),
		zap.Int64s("ids", e.IDs),
		zap.Time("occurred_at", e.OccurredAt),
	}
	if e.Category != "" {
		fields = append(fields, zap.String("category", e.Category))
	}
	return fields
}
