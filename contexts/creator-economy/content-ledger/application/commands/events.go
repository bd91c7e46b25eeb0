package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"creatorpass/contexts/creator-economy/content-ledger/ports"

	"github.com/google/uuid"
)

const sourceService = "creator-economy/content-ledger"

// publishEvent wraps the payload in the canonical envelope and hands it to
// the publisher. Delivery problems are logged, not surfaced: the ledger write
// already committed and must not be reported as failed.
func publishEvent(
	ctx context.Context,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	eventType string,
	partitionKey string,
	occurredAt time.Time,
	payload any,
) {
	if publisher == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("event payload marshal failed",
			"event", "content_ledger_event_marshal_failed",
			"module", sourceService,
			"layer", "application",
			"event_type", eventType,
			"error", err.Error(),
		)
		return
	}

	envelope := ports.EventEnvelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		OccurredAt:    occurredAt.UTC(),
		SourceService: sourceService,
		SchemaVersion: 1,
		PartitionKey:  partitionKey,
		Data:          data,
	}
	if err := publisher.Publish(ctx, ports.EventTopic, envelope); err != nil {
		logger.Error("event publish failed",
			"event", "content_ledger_event_publish_failed",
			"module", sourceService,
			"layer", "application",
			"event_type", eventType,
			"event_id", envelope.EventID,
			"error", err.Error(),
		)
	}
}
