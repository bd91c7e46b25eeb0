package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	application "creatorpass/contexts/creator-economy/content-ledger/application"
	"creatorpass/contexts/creator-economy/content-ledger/domain/entities"
	domainerrors "creatorpass/contexts/creator-economy/content-ledger/domain/errors"
	"creatorpass/contexts/creator-economy/content-ledger/ports"
)

// subscriptionPeriod is fixed; there are no tiered plans or custom terms.
const subscriptionPeriod = 30 * 24 * time.Hour

type SubscribeCommand struct {
	Subscriber     string
	ContentID      int64
	PaymentCents   int64
	IdempotencyKey string
}

type SubscribeResult struct {
	Subscription entities.Subscription
	Replayed     bool
}

type SubscribeUseCase struct {
	Contents       ports.ContentRepository
	Subscriptions  ports.SubscriptionRepository
	Idempotency    ports.IdempotencyStore
	Payments       ports.PaymentGateway
	Events         ports.EventPublisher
	Clock          ports.Clock
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

// Execute runs the purchase workflow in this order:
// 1) idempotency lookup/replay
// 2) guarded atomic write (record, indices, counter, payment last)
// 3) idempotency record write
// 4) event publication.
func (u SubscribeUseCase) Execute(ctx context.Context, cmd SubscribeCommand) (SubscribeResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.Subscriber) == "" {
		return SubscribeResult{}, domainerrors.ErrInvalidInput
	}
	if strings.TrimSpace(cmd.IdempotencyKey) == "" {
		return SubscribeResult{}, domainerrors.ErrIdempotencyKeyRequired
	}

	now := u.now()
	key := strings.TrimSpace(cmd.IdempotencyKey)
	requestHash := hashSubscribeRequest(cmd)

	record, found, err := u.Idempotency.Get(ctx, key, now)
	if err != nil {
		return SubscribeResult{}, err
	}
	if found {
		if record.RequestHash != requestHash {
			logger.Warn("subscribe idempotency conflict",
				"event", "content_ledger_subscribe_idempotency_conflict",
				"module", sourceService,
				"layer", "application",
				"content_id", cmd.ContentID,
				"subscriber", cmd.Subscriber,
			)
			return SubscribeResult{}, domainerrors.ErrIdempotencyConflict
		}
		subscription, err := u.Subscriptions.GetSubscription(ctx, record.SubscriptionID)
		if err != nil {
			return SubscribeResult{}, err
		}
		return SubscribeResult{Subscription: subscription, Replayed: true}, nil
	}

	subscription, err := u.Subscriptions.CreateSubscriptionWithPayment(ctx, ports.NewSubscription{
		Subscriber:   cmd.Subscriber,
		ContentID:    cmd.ContentID,
		PaymentCents: cmd.PaymentCents,
		SubscribedAt: now,
		ExpiresAt:    now.Add(subscriptionPeriod),
	}, u.Payments)
	if err != nil {
		logger.Warn("subscribe rejected",
			"event", "content_ledger_subscribe_rejected",
			"module", sourceService,
			"layer", "application",
			"content_id", cmd.ContentID,
			"subscriber", cmd.Subscriber,
			"error", err.Error(),
		)
		return SubscribeResult{}, err
	}

	if err := u.Idempotency.Put(ctx, ports.IdempotencyRecord{
		Key:            key,
		RequestHash:    requestHash,
		SubscriptionID: subscription.SubscriptionID,
		ExpiresAt:      now.Add(u.idempotencyTTL()),
	}); err != nil {
		return SubscribeResult{}, err
	}

	publishEvent(ctx, u.Events, logger, ports.EventTypeSubscriptionPurchased,
		strconv.FormatInt(subscription.ContentID, 10), now,
		ports.SubscriptionPurchasedEvent{
			SubscriptionID: subscription.SubscriptionID,
			Subscriber:     subscription.Subscriber,
			ContentID:      subscription.ContentID,
			ExpiresAt:      subscription.ExpiresAt,
		})

	logger.Info("subscription purchased",
		"event", "content_ledger_subscription_purchased",
		"module", sourceService,
		"layer", "application",
		"subscription_id", subscription.SubscriptionID,
		"content_id", subscription.ContentID,
		"subscriber", subscription.Subscriber,
		"expires_at", subscription.ExpiresAt,
	)
	return SubscribeResult{Subscription: subscription}, nil
}

func (u SubscribeUseCase) idempotencyTTL() time.Duration {
	if u.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return u.IdempotencyTTL
}

func (u SubscribeUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}

func hashSubscribeRequest(cmd SubscribeCommand) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%d", cmd.Subscriber, cmd.ContentID, cmd.PaymentCents)))
	return hex.EncodeToString(sum[:])
}
