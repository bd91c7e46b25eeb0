package ports

import (
	"context"
	"time"

	"creatorpass/contexts/creator-economy/content-ledger/domain/entities"
	"creatorpass/internal/shared/events"
)

type Clock interface {
	Now() time.Time
}

type IdempotencyRecord struct {
	Key            string
	RequestHash    string
	SubscriptionID int64
	ExpiresAt      time.Time
}

type IdempotencyStore interface {
	Get(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	Put(ctx context.Context, record IdempotencyRecord) error
}

// NewContent is the validated draft handed to the repository; the adapter
// allocates the next dense content id and stores the record.
type NewContent struct {
	Creator     string
	Title       string
	Description string
	PriceCents  int64
	CreatedAt   time.Time
}

type ContentUpdate struct {
	Title       string
	Description string
	PriceCents  int64
}

// NewSubscription carries the purchase parameters into the transactional
// subscribe write. PaymentCents is the attached amount, which may exceed the
// listing price; the full amount is routed to the creator.
type NewSubscription struct {
	Subscriber   string
	ContentID    int64
	PaymentCents int64
	SubscribedAt time.Time
	ExpiresAt    time.Time
}

type ContentRepository interface {
	CreateContent(ctx context.Context, draft NewContent) (entities.Content, error)
	GetContent(ctx context.Context, contentID int64) (entities.Content, error)
	UpdateContent(ctx context.Context, contentID int64, update ContentUpdate) (entities.Content, error)
	ToggleContentStatus(ctx context.Context, contentID int64) (entities.Content, error)
	ListContentIDsByCreator(ctx context.Context, creator string) ([]int64, error)
	CountActiveContents(ctx context.Context) (int64, error)
}

type SubscriptionRepository interface {
	// CreateSubscriptionWithPayment runs the full guarded purchase as one
	// atomic write: guards, record creation, index appends, subscriber
	// counter, and finally the payment transfer. A failed transfer undoes
	// every prior mutation of the call.
	CreateSubscriptionWithPayment(ctx context.Context, draft NewSubscription, gateway PaymentGateway) (entities.Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID int64) (entities.Subscription, error)
	ListSubscriptionIDsByUser(ctx context.Context, subscriber string) ([]int64, error)
	ListSubscriptionsByUser(ctx context.Context, subscriber string) ([]entities.Subscription, error)
	ListSubscriptionIDsByContent(ctx context.Context, contentID int64) ([]int64, error)
}

// PaymentTransfer moves the attached amount to the content creator. It is
// the one step of a purchase where an external party gains control flow.
type PaymentTransfer struct {
	Payer       string
	Recipient   string
	AmountCents int64
	ContentID   int64
	OccurredAt  time.Time
}

type PaymentGateway interface {
	Pay(ctx context.Context, transfer PaymentTransfer) error
}

type EventEnvelope = events.Envelope

type EventPublisher interface {
	Publish(ctx context.Context, topic string, envelope EventEnvelope) error
}

const (
	EventTypeContentCreated        = "content_ledger.content_created"
	EventTypeSubscriptionPurchased = "content_ledger.subscription_purchased"
	EventTypeContentUpdated        = "content_ledger.content_updated"

	EventTopic = "content-ledger.events"
)

type ContentCreatedEvent struct {
	ContentID  int64  `json:"content_id"`
	Creator    string `json:"creator"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
}

type SubscriptionPurchasedEvent struct {
	SubscriptionID int64     `json:"subscription_id"`
	Subscriber     string    `json:"subscriber"`
	ContentID      int64     `json:"content_id"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type ContentUpdatedEvent struct {
	ContentID   int64  `json:"content_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
}
