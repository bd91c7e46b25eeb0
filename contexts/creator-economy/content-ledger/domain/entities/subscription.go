package entities

import "time"

// Subscription is a time-bounded access grant from one subscriber to one
// content listing. Records are append-only and never deleted.
type Subscription struct {
	SubscriptionID int64
	Subscriber     string
	ContentID      int64
	ExpiresAt      time.Time
	IsActive       bool
	SubscribedAt   time.Time
}

// IsActiveAt combines the stored flag with the expiry check. Natural expiry
// never writes the flag back; it is evaluated lazily at read time.
func (s Subscription) IsActiveAt(now time.Time) bool {
	return s.IsActive && s.ExpiresAt.After(now.UTC())
}
