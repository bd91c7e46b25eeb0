package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"creatorpass/internal/shared/events"

	"github.com/IBM/sarama"
)

// KafkaPublisher publishes envelopes to an external Kafka cluster. Used when
// KAFKA_BROKERS is configured; otherwise processes run on the in-process Bus.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	logger   *slog.Logger
}

func NewKafkaPublisher(brokers []string, logger *slog.Logger) (*KafkaPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 500 * time.Millisecond
	config.Producer.Timeout = 10 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka sync producer: %w", err)
	}

	logger.Info("kafka producer initialized",
		"event", "kafka_producer_initialized",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"brokers", brokers,
	)
	return &KafkaPublisher{producer: producer, logger: logger}, nil
}

func (p *KafkaPublisher) Publish(_ context.Context, topic string, event events.Envelope) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event envelope: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(event.PartitionKey),
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		p.logger.Error("kafka publish failed",
			"event", "kafka_publish_failed",
			"module", "internal/platform/messaging",
			"layer", "platform",
			"topic", topic,
			"event_type", event.EventType,
			"error", err.Error(),
		)
		return fmt.Errorf("send kafka message: %w", err)
	}

	p.logger.Debug("kafka event published",
		"event", "kafka_event_published",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"topic", topic,
		"event_type", event.EventType,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
