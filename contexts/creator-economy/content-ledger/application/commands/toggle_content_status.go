package commands

import (
	"context"
	"log/slog"

	application "creatorpass/contexts/creator-economy/content-ledger/application"
	"creatorpass/contexts/creator-economy/content-ledger/domain/entities"
	domainerrors "creatorpass/contexts/creator-economy/content-ledger/domain/errors"
	"creatorpass/contexts/creator-economy/content-ledger/ports"
)

type ToggleContentStatusCommand struct {
	Caller    string
	ContentID int64
}

type ToggleContentStatusResult struct {
	Content entities.Content
}

type ToggleContentStatusUseCase struct {
	Contents ports.ContentRepository
	Logger   *slog.Logger
}

// Execute flips the listing's active flag. Unlike the other mutating
// operations this one publishes no event.
func (u ToggleContentStatusUseCase) Execute(ctx context.Context, cmd ToggleContentStatusCommand) (ToggleContentStatusResult, error) {
	logger := application.ResolveLogger(u.Logger)

	content, err := u.Contents.GetContent(ctx, cmd.ContentID)
	if err != nil {
		return ToggleContentStatusResult{}, err
	}
	if !content.IsOwnedBy(cmd.Caller) {
		return ToggleContentStatusResult{}, domainerrors.ErrNotCreator
	}

	toggled, err := u.Contents.ToggleContentStatus(ctx, cmd.ContentID)
	if err != nil {
		return ToggleContentStatusResult{}, err
	}

	logger.Info("content status toggled",
		"event", "content_ledger_status_toggled",
		"module", sourceService,
		"layer", "application",
		"content_id", toggled.ContentID,
		"is_active", toggled.IsActive,
	)
	return ToggleContentStatusResult{Content: toggled}, nil
}
