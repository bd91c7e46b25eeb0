package services

import (
	"time"

	"creatorpass/contexts/creator-economy/content-ledger/domain/entities"
	domainerrors "creatorpass/contexts/creator-economy/content-ledger/domain/errors"
)

// EvaluateSubscribeEligibility runs the purchase guards in their reporting
// order: inactive content, insufficient payment, self-subscription, duplicate
// active subscription. Existence of the content is checked by the caller
// before loading it.
func EvaluateSubscribeEligibility(
	content entities.Content,
	subscriberHistory []entities.Subscription,
	subscriber string,
	paymentCents int64,
	now time.Time,
) error {
	if !content.IsActive {
		return domainerrors.ErrContentInactive
	}
	if paymentCents < content.PriceCents {
		return domainerrors.ErrInsufficientPayment
	}
	if content.IsOwnedBy(subscriber) {
		return domainerrors.ErrSelfSubscription
	}
	if HasActiveSubscription(subscriberHistory, content.ContentID, now) {
		return domainerrors.ErrAlreadySubscribed
	}
	return nil
}

// HasActiveSubscription scans a subscriber's history for a currently-active
// grant to the given content. Expired grants stay in the history untouched.
func HasActiveSubscription(history []entities.Subscription, contentID int64, now time.Time) bool {
	for _, sub := range history {
		if sub.ContentID == contentID && sub.IsActiveAt(now) {
			return true
		}
	}
	return false
}
