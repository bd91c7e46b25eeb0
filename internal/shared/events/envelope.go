package events

import (
	"encoding/json"
	"time"
)

// Envelope is the canonical event shape published by creatorpass modules.
// Consumers key on EventType and decode Data against the matching payload
// struct; the envelope itself must stay backward compatible.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	SourceService string          `json:"source_service"`
	SchemaVersion int             `json:"schema_version"`
	PartitionKey  string          `json:"partition_key"`
	Data          json.RawMessage `json:"data"`
}
