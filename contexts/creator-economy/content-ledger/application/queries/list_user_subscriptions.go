package queries

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "creatorpass/contexts/creator-economy/content-ledger/domain/errors"
	"creatorpass/contexts/creator-economy/content-ledger/ports"
)

type ListUserSubscriptionsQuery struct {
	Subscriber string
}

type ListUserSubscriptionsResult struct {
	SubscriptionIDs []int64
}

type ListUserSubscriptionsUseCase struct {
	Subscriptions ports.SubscriptionRepository
	Logger        *slog.Logger
}

func (u ListUserSubscriptionsUseCase) Execute(ctx context.Context, query ListUserSubscriptionsQuery) (ListUserSubscriptionsResult, error) {
	if strings.TrimSpace(query.Subscriber) == "" {
		return ListUserSubscriptionsResult{}, domainerrors.ErrInvalidInput
	}
	ids, err := u.Subscriptions.ListSubscriptionIDsByUser(ctx, query.Subscriber)
	if err != nil {
		return ListUserSubscriptionsResult{}, err
	}
	return ListUserSubscriptionsResult{SubscriptionIDs: ids}, nil
}
