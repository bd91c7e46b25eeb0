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

type CreateContentCommand struct {
	Creator     string
	Title       string
	Description string
	PriceCents  int64
}

type CreateContentResult struct {
	Content entities.Content
}

type CreateContentUseCase struct {
	Contents ports.ContentRepository
	Clock    ports.Clock
	Events   ports.EventPublisher
	Logger   *slog.Logger
}

func (u CreateContentUseCase) Execute(ctx context.Context, cmd CreateContentCommand) (CreateContentResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.Creator) == "" ||
		strings.TrimSpace(cmd.Title) == "" ||
		cmd.PriceCents <= 0 {
		return CreateContentResult{}, domainerrors.ErrInvalidInput
	}

	now := u.now()
	content, err := u.Contents.CreateContent(ctx, ports.NewContent{
		Creator:     cmd.Creator,
		Title:       cmd.Title,
		Description: cmd.Description,
		PriceCents:  cmd.PriceCents,
		CreatedAt:   now,
	})
	if err != nil {
		logger.Error("create content failed",
			"event", "content_ledger_create_failed",
			"module", sourceService,
			"layer", "application",
			"creator", cmd.Creator,
			"error", err.Error(),
		)
		return CreateContentResult{}, err
	}

	publishEvent(ctx, u.Events, logger, ports.EventTypeContentCreated,
		strconv.FormatInt(content.ContentID, 10), now,
		ports.ContentCreatedEvent{
			ContentID:  content.ContentID,
			Creator:    content.Creator,
			Title:      content.Title,
			PriceCents: content.PriceCents,
		})

	logger.Info("content created",
		"event", "content_ledger_content_created",
		"module", sourceService,
		"layer", "application",
		"content_id", content.ContentID,
		"creator", content.Creator,
	)
	return CreateContentResult{Content: content}, nil
}

func (u CreateContentUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
