package queries

import (
	"context"
	"log/slog"

	"creatorpass/contexts/creator-economy/content-ledger/domain/entities"
	"creatorpass/contexts/creator-economy/content-ledger/ports"
)

type GetContentQuery struct {
	ContentID int64
}

type GetContentResult struct {
	Content entities.Content
}

type GetContentUseCase struct {
	Contents ports.ContentRepository
	Logger   *slog.Logger
}

func (u GetContentUseCase) Execute(ctx context.Context, query GetContentQuery) (GetContentResult, error) {
	content, err := u.Contents.GetContent(ctx, query.ContentID)
	if err != nil {
		return GetContentResult{}, err
	}
	return GetContentResult{Content: content}, nil
}
