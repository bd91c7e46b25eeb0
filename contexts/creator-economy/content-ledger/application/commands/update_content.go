package commands

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	application "creatorpass/contexts/creator-economy/content-ledger/application"
	"creatorpass/contexts/creator-economy/content-ledger/domain/entities"
	domainerrors "creatorpass/contexts/creator-economy/content-ledger/domain/errors"
	"creatorpass/contexts/creator-economy/content-ledger/ports"
)

type UpdateContentCommand struct {
	Caller      string
	ContentID   int64
	Title       string
	Description string
	PriceCents  int64
}

type UpdateContentResult struct {
	Content entities.Content
}

type UpdateContentUseCase struct {
	Contents ports.ContentRepository
	Clock    ports.Clock
	Events   ports.EventPublisher
	Logger   *slog.Logger
}

// Execute re-lists the content: title, description and price are overwritten
// in place, everything else (id, creator, createdAt, counters, status) is
// untouched. Authorization is resolved before any mutation.
func (u UpdateContentUseCase) Execute(ctx context.Context, cmd UpdateContentCommand) (UpdateContentResult, error) {
	logger := application.ResolveLogger(u.Logger)

	content, err := u.Contents.GetContent(ctx, cmd.ContentID)
	if err != nil {
		return UpdateContentResult{}, err
	}
	if !content.IsOwnedBy(cmd.Caller) {
		logger.Warn("update content denied",
			"event", "content_ledger_update_denied",
			"module", sourceService,
			"layer", "application",
			"content_id", cmd.ContentID,
			"caller", cmd.Caller,
		)
		return UpdateContentResult{}, domainerrors.ErrNotCreator
	}
	if strings.TrimSpace(cmd.Title) == "" || cmd.PriceCents <= 0 {
		return UpdateContentResult{}, domainerrors.ErrInvalidInput
	}

	updated, err := u.Contents.UpdateContent(ctx, cmd.ContentID, ports.ContentUpdate{
		Title:       cmd.Title,
		Description: cmd.Description,
		PriceCents:  cmd.PriceCents,
	})
	if err != nil {
		return UpdateContentResult{}, err
	}

	publishEvent(ctx, u.Events, logger, ports.EventTypeContentUpdated,
		strconv.FormatInt(updated.ContentID, 10), u.now(),
		ports.ContentUpdatedEvent{
			ContentID:   updated.ContentID,
			Title:       updated.Title,
			Description: updated.Description,
			PriceCents:  updated.PriceCents,
		})

	logger.Info("content updated",
		"event", "content_ledger_content_updated",
		"module", sourceService,
		"layer", "application",
		"content_id", updated.ContentID,
	)
	return UpdateContentResult{Content: updated}, nil
}

func (u UpdateContentUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
