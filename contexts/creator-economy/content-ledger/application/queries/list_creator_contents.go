package queries

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "creatorpass/contexts/creator-economy/content-ledger/domain/errors"
	"creatorpass/contexts/creator-economy/content-ledger/ports"
)

type ListCreatorContentsQuery struct {
	Creator string
}

type ListCreatorContentsResult struct {
	ContentIDs []int64
}

type ListCreatorContentsUseCase struct {
	Contents ports.ContentRepository
	Logger   *slog.Logger
}

// Execute returns the creator's content ids in creation order, exactly as
// the index stores them.
func (u ListCreatorContentsUseCase) Execute(ctx context.Context, query ListCreatorContentsQuery) (ListCreatorContentsResult, error) {
	if strings.TrimSpace(query.Creator) == "" {
		return ListCreatorContentsResult{}, domainerrors.ErrInvalidInput
	}
	ids, err := u.Contents.ListContentIDsByCreator(ctx, query.Creator)
	if err != nil {
		return ListCreatorContentsResult{}, err
	}
	return ListCreatorContentsResult{ContentIDs: ids}, nil
}
