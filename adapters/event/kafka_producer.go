package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/pranavsangichetty/portfolio/internal/config"
	"github.com/pranavsangichetty/portfolio/internal/domain/activity"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

const TopicContentEvents = "content.events"

// messageWriter is the part of *kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ContentEventsWriter messageWriter
	logger              logger.Logger
}

var _ activity.Publisher = (*KafkaProducerClient)(nil)

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'content.events'
	contentWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicContentEvents,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.", zap.Strings("brokers", brokers), zap.String("topic", TopicContentEvents))

	return &KafkaProducerClient{ContentEventsWriter: contentWriter, logger: log}, nil
}

// Publish writes e keyed by its collection so events of one collection stay ordered.
func (c *KafkaProducerClient) Publish(ctx context.Context, e activity.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal activity event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(e.Collection),
		Value: payload,
		Time:  e.OccurredAt,
	}
	if err := c.ContentEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write to %s: %w", TopicContentEvents, err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		if err := c.ContentEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka writer", err)
		}
	}
	c.logger.Info("Closed Kafka Producers")
}

// DecodeEvent parses a message produced by Publish.
func DecodeEvent(msg kafka.Message) (activity.Event, error) {
	var e activity.Event
	if err := json.Unmarshal(msg.Value, &e); err != nil {
		return e, fmt.Errorf("unmarshal activity event: %w", err)
	}
	return e, nil
}
