package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"creatorpass/contexts/creator-economy/content-ledger/domain/entities"
	domainerrors "creatorpass/contexts/creator-economy/content-ledger/domain/errors"
	"creatorpass/contexts/creator-economy/content-ledger/domain/services"
	"creatorpass/contexts/creator-economy/content-ledger/ports"
)

// Store is the in-memory ledger state machine: the two record tables, the
// three append-only id indices, and the two dense id counters. Every
// operation runs to completion under the store lock, so callers observe
// either the pre-state or the post-state of a write, never a partial one.
type Store struct {
	mu sync.RWMutex

	contentsByID      map[int64]entities.Content
	subscriptionsByID map[int64]entities.Subscription

	creatorContents      map[string][]int64
	userSubscriptions    map[string][]int64
	contentSubscriptions map[int64][]int64

	lastContentID      int64
	lastSubscriptionID int64

	idempotency map[string]ports.IdempotencyRecord
}

func NewStore() *Store {
	return &Store{
		contentsByID:         make(map[int64]entities.Content),
		subscriptionsByID:    make(map[int64]entities.Subscription),
		creatorContents:      make(map[string][]int64),
		userSubscriptions:    make(map[string][]int64),
		contentSubscriptions: make(map[int64][]int64),
		idempotency:          make(map[string]ports.IdempotencyRecord),
	}
}

// Now implements ports.Clock so the store can back module wiring directly.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) CreateContent(_ context.Context, draft ports.NewContent) (entities.Content, error) {
	content, err := entities.NewContent(draft.Creator, draft.Title, draft.Description, draft.PriceCents, draft.CreatedAt)
	if err != nil {
		return entities.Content{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastContentID++
	content.ContentID = s.lastContentID
	s.contentsByID[content.ContentID] = content
	s.creatorContents[content.Creator] = append(s.creatorContents[content.Creator], content.ContentID)
	return content, nil
}

func (s *Store) GetContent(_ context.Context, contentID int64) (entities.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contentLocked(contentID)
}

func (s *Store) UpdateContent(_ context.Context, contentID int64, update ports.ContentUpdate) (entities.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.contentLocked(contentID)
	if err != nil {
		return entities.Content{}, err
	}
	if strings.TrimSpace(update.Title) == "" || update.PriceCents <= 0 {
		return entities.Content{}, domainerrors.ErrInvalidInput
	}

	content.Title = update.Title
	content.Description = update.Description
	content.PriceCents = update.PriceCents
	s.contentsByID[contentID] = content
	return content, nil
}

func (s *Store) ToggleContentStatus(_ context.Context, contentID int64) (entities.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.contentLocked(contentID)
	if err != nil {
		return entities.Content{}, err
	}
	content.IsActive = !content.IsActive
	s.contentsByID[contentID] = content
	return content, nil
}

func (s *Store) ListContentIDsByCreator(_ context.Context, creator string) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyIDs(s.creatorContents[creator]), nil
}

// CountActiveContents walks every id ever issued, deactivated listings
// included. Linear in total content created; the id space is dense so the
// walk doubles as an existence check.
func (s *Store) CountActiveContents(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for id := int64(1); id <= s.lastContentID; id++ {
		if content, ok := s.contentsByID[id]; ok && content.IsActive {
			count++
		}
	}
	return count, nil
}

// CreateSubscriptionWithPayment performs the guarded purchase as one atomic
// step. All bookkeeping is written before the payment transfer runs, and a
// failed transfer undoes this call's writes before the lock is released, so
// no caller can observe a subscription whose payment did not settle.
func (s *Store) CreateSubscriptionWithPayment(
	ctx context.Context,
	draft ports.NewSubscription,
	gateway ports.PaymentGateway,
) (entities.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.contentLocked(draft.ContentID)
	if err != nil {
		return entities.Subscription{}, err
	}
	history := s.subscriptionsForLocked(s.userSubscriptions[draft.Subscriber])
	if err := services.EvaluateSubscribeEligibility(
		content,
		history,
		draft.Subscriber,
		draft.PaymentCents,
		draft.SubscribedAt,
	); err != nil {
		return entities.Subscription{}, err
	}

	s.lastSubscriptionID++
	subscription := entities.Subscription{
		SubscriptionID: s.lastSubscriptionID,
		Subscriber:     draft.Subscriber,
		ContentID:      draft.ContentID,
		ExpiresAt:      draft.ExpiresAt.UTC(),
		IsActive:       true,
		SubscribedAt:   draft.SubscribedAt.UTC(),
	}
	s.subscriptionsByID[subscription.SubscriptionID] = subscription
	s.userSubscriptions[draft.Subscriber] = append(s.userSubscriptions[draft.Subscriber], subscription.SubscriptionID)
	s.contentSubscriptions[draft.ContentID] = append(s.contentSubscriptions[draft.ContentID], subscription.SubscriptionID)
	content.TotalSubscribers++
	s.contentsByID[content.ContentID] = content

	transfer := ports.PaymentTransfer{
		Payer:       draft.Subscriber,
		Recipient:   content.Creator,
		AmountCents: draft.PaymentCents,
		ContentID:   content.ContentID,
		OccurredAt:  draft.SubscribedAt.UTC(),
	}
	if err := gateway.Pay(ctx, transfer); err != nil {
		delete(s.subscriptionsByID, subscription.SubscriptionID)
		s.userSubscriptions[draft.Subscriber] = trimLast(s.userSubscriptions[draft.Subscriber])
		s.contentSubscriptions[draft.ContentID] = trimLast(s.contentSubscriptions[draft.ContentID])
		content.TotalSubscribers--
		s.contentsByID[content.ContentID] = content
		s.lastSubscriptionID--
		return entities.Subscription{}, fmt.Errorf("%w: %v", domainerrors.ErrPaymentTransferFailed, err)
	}

	return subscription, nil
}

func (s *Store) GetSubscription(_ context.Context, subscriptionID int64) (entities.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subscription, ok := s.subscriptionsByID[subscriptionID]
	if !ok {
		return entities.Subscription{}, domainerrors.ErrSubscriptionNotFound
	}
	return subscription, nil
}

func (s *Store) ListSubscriptionIDsByUser(_ context.Context, subscriber string) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyIDs(s.userSubscriptions[subscriber]), nil
}

func (s *Store) ListSubscriptionsByUser(_ context.Context, subscriber string) ([]entities.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subscriptionsForLocked(s.userSubscriptions[subscriber]), nil
}

func (s *Store) ListSubscriptionIDsByContent(_ context.Context, contentID int64) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyIDs(s.contentSubscriptions[contentID]), nil
}

func (s *Store) Get(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.idempotency[key]
	if !ok || !record.ExpiresAt.After(now.UTC()) {
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) Put(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.idempotency[record.Key] = record
	return nil
}

func (s *Store) contentLocked(contentID int64) (entities.Content, error) {
	if contentID <= 0 {
		return entities.Content{}, domainerrors.ErrContentNotFound
	}
	content, ok := s.contentsByID[contentID]
	if !ok {
		return entities.Content{}, domainerrors.ErrContentNotFound
	}
	return content, nil
}

func (s *Store) subscriptionsForLocked(ids []int64) []entities.Subscription {
	items := make([]entities.Subscription, 0, len(ids))
	for _, id := range ids {
		if subscription, ok := s.subscriptionsByID[id]; ok {
			items = append(items, subscription)
		}
	}
	return items
}

func copyIDs(ids []int64) []int64 {
	out := make([]int64, len(ids))
	copy(out, ids)
	return out
}

func trimLast(ids []int64) []int64 {
	if len(ids) == 0 {
		return ids
	}
	return ids[:len(ids)-1]
}
