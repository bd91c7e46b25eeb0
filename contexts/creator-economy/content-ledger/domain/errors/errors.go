package errors

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	ErrIdempotencyConflict    = errors.New("idempotency key reused with different request")

	ErrContentNotFound       = errors.New("content not found")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrNotCreator            = errors.New("caller is not the content creator")
	ErrContentInactive       = errors.New("content is not active")
	ErrInsufficientPayment   = errors.New("payment amount is below the subscription price")
	ErrSelfSubscription      = errors.New("creators cannot subscribe to their own content")
	ErrAlreadySubscribed     = errors.New("subscriber already holds an active subscription to this content")
	ErrPaymentTransferFailed = errors.New("payment transfer failed")
)
