package queries

import (
	"context"
	"log/slog"

	"creatorpass/contexts/creator-economy/content-ledger/ports"
)

type CountActiveContentsResult struct {
	ActiveContents int64
}

type CountActiveContentsUseCase struct {
	Contents ports.ContentRepository
	Logger   *slog.Logger
}

func (u CountActiveContentsUseCase) Execute(ctx context.Context) (CountActiveContentsResult, error) {
	count, err := u.Contents.CountActiveContents(ctx)
	if err != nil {
		return CountActiveContentsResult{}, err
	}
	return CountActiveContentsResult{ActiveContents: count}, nil
}
