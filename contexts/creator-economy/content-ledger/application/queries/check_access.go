package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "creatorpass/contexts/creator-economy/content-ledger/domain/errors"
	"creatorpass/contexts/creator-economy/content-ledger/domain/services"
	"creatorpass/contexts/creator-economy/content-ledger/ports"
)

type CheckAccessQuery struct {
	User      string
	ContentID int64
}

type CheckAccessResult struct {
	HasAccess bool
}

type CheckAccessUseCase struct {
	Subscriptions ports.SubscriptionRepository
	Clock         ports.Clock
	Logger        *slog.Logger
}

// Execute is a pure read: expiry is evaluated against the clock, nothing is
// written back for naturally expired grants.
func (u CheckAccessUseCase) Execute(ctx context.Context, query CheckAccessQuery) (CheckAccessResult, error) {
	if strings.TrimSpace(query.User) == "" {
		return CheckAccessResult{}, domainerrors.ErrInvalidInput
	}
	history, err := u.Subscriptions.ListSubscriptionsByUser(ctx, query.User)
	if err != nil {
		return CheckAccessResult{}, err
	}
	return CheckAccessResult{
		HasAccess: services.HasActiveSubscription(history, query.ContentID, u.now()),
	}, nil
}

func (u CheckAccessUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
