package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pranavsangichetty/portfolio/internal/domain/activity"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

const publishTimeout = 5 * time.Second

// PublishAsync hands e to pub in the background. Failures are logged, never returned.
func PublishAsync(pub activity.Publisher, log logger.Logger, e activity.Event) {
	if pub == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := pub.Publish(ctx, e); err != nil {
			log.Error("Failed to publish activity event", err,
				zap.String("event_type", string(e.Type)),
				zap.Int64s("ids", e.IDs),
			)
		}
	}()
}
