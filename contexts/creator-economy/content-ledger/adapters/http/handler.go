package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"creatorpass/contexts/creator-economy/content-ledger/application/commands"
	"creatorpass/contexts/creator-economy/content-ledger/application/queries"
	"creatorpass/contexts/creator-economy/content-ledger/domain/entities"
	httptransport "creatorpass/contexts/creator-economy/content-ledger/transport/http"
)

type Handler struct {
	CreateContent       commands.CreateContentUseCase
	UpdateContent       commands.UpdateContentUseCase
	ToggleContentStatus commands.ToggleContentStatusUseCase
	Subscribe           commands.SubscribeUseCase
	GetContent          queries.GetContentUseCase
	CheckAccess         queries.CheckAccessUseCase
	ListCreatorContents queries.ListCreatorContentsUseCase
	ListSubscriptions   queries.ListUserSubscriptionsUseCase
	CountActive         queries.CountActiveContentsUseCase
	Logger              *slog.Logger
}

// CreateContentHandler godoc
// @Summary Create a content listing
// @Description Registers a new listing owned by the caller with a fixed subscription price.
// @Tags content-ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param X-User-Id header string true "Authenticated caller identity"
// @Param request body httptransport.CreateContentRequest true "Listing parameters"
// @Success 201 {object} httptransport.ContentResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/v1/contents [post]
func (h Handler) CreateContentHandler(ctx context.Context, caller string, req httptransport.CreateContentRequest) (httptransport.ContentResponse, error) {
	result, err := h.CreateContent.Execute(ctx, commands.CreateContentCommand{
		Creator:     caller,
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		return httptransport.ContentResponse{}, err
	}
	return httptransport.ContentResponse{Item: mapContent(result.Content)}, nil
}

// GetContentHandler godoc
// @Summary Get a content listing
// @Tags content-ledger
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param content_id path int true "Content id"
// @Success 200 {object} httptransport.ContentResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/v1/contents/{content_id} [get]
func (h Handler) GetContentHandler(ctx context.Context, contentID int64) (httptransport.ContentResponse, error) {
	result, err := h.GetContent.Execute(ctx, queries.GetContentQuery{ContentID: contentID})
	if err != nil {
		return httptransport.ContentResponse{}, err
	}
	return httptransport.ContentResponse{Item: mapContent(result.Content)}, nil
}

// UpdateContentHandler godoc
// @Summary Update a content listing
// @Description Overwrites title, description and price. Only the creator may call this.
// @Tags content-ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param X-User-Id header string true "Authenticated caller identity"
// @Param content_id path int true "Content id"
// @Param request body httptransport.UpdateContentRequest true "New listing fields"
// @Success 200 {object} httptransport.ContentResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/v1/contents/{content_id} [put]
func (h Handler) UpdateContentHandler(ctx context.Context, caller string, contentID int64, req httptransport.UpdateContentRequest) (httptransport.ContentResponse, error) {
	result, err := h.UpdateContent.Execute(ctx, commands.UpdateContentCommand{
		Caller:      caller,
		ContentID:   contentID,
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		return httptransport.ContentResponse{}, err
	}
	return httptransport.ContentResponse{Item: mapContent(result.Content)}, nil
}

// ToggleContentStatusHandler godoc
// @Summary Toggle a listing's active status
// @Tags content-ledger
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param X-User-Id header string true "Authenticated caller identity"
// @Param content_id path int true "Content id"
// @Success 200 {object} httptransport.ContentResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/v1/contents/{content_id}/toggle [post]
func (h Handler) ToggleContentStatusHandler(ctx context.Context, caller string, contentID int64) (httptransport.ContentResponse, error) {
	result, err := h.ToggleContentStatus.Execute(ctx, commands.ToggleContentStatusCommand{
		Caller:    caller,
		ContentID: contentID,
	})
	if err != nil {
		return httptransport.ContentResponse{}, err
	}
	return httptransport.ContentResponse{Item: mapContent(result.Content)}, nil
}

// SubscribeHandler godoc
// @Summary Purchase a subscription
// @Description Creates a 30-day subscription and routes the attached amount to the creator.
// @Tags content-ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param X-User-Id header string true "Authenticated caller identity"
// @Param Idempotency-Key header string true "Idempotency key"
// @Param content_id path int true "Content id"
// @Param request body httptransport.SubscribeRequest true "Attached payment"
// @Success 201 {object} httptransport.SubscribeResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 402 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 424 {object} httptransport.ErrorResponse
// @Router /api/v1/contents/{content_id}/subscribe [post]
func (h Handler) SubscribeHandler(ctx context.Context, caller string, contentID int64, req httptransport.SubscribeRequest, idempotencyKey string) (httptransport.SubscribeResponse, error) {
	result, err := h.Subscribe.Execute(ctx, commands.SubscribeCommand{
		Subscriber:     caller,
		ContentID:      contentID,
		PaymentCents:   req.PaymentCents,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return httptransport.SubscribeResponse{}, err
	}
	return httptransport.SubscribeResponse{
		Subscription: mapSubscription(result.Subscription),
		Replayed:     result.Replayed,
	}, nil
}

// CheckAccessHandler godoc
// @Summary Check subscription access
// @Description Reports whether the caller currently holds an active subscription to the content.
// @Tags content-ledger
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param X-User-Id header string true "Authenticated caller identity"
// @Param content_id path int true "Content id"
// @Success 200 {object} httptransport.AccessResponse
// @Router /api/v1/contents/{content_id}/access [get]
func (h Handler) CheckAccessHandler(ctx context.Context, caller string, contentID int64) (httptransport.AccessResponse, error) {
	result, err := h.CheckAccess.Execute(ctx, queries.CheckAccessQuery{
		User:      caller,
		ContentID: contentID,
	})
	if err != nil {
		return httptransport.AccessResponse{}, err
	}
	return httptransport.AccessResponse{ContentID: contentID, HasAccess: result.HasAccess}, nil
}

// ListCreatorContentsHandler godoc
// @Summary List a creator's content ids
// @Tags content-ledger
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param creator_id path string true "Creator identity"
// @Success 200 {object} httptransport.CreatorContentsResponse
// @Router /api/v1/creators/{creator_id}/contents [get]
func (h Handler) ListCreatorContentsHandler(ctx context.Context, creator string) (httptransport.CreatorContentsResponse, error) {
	result, err := h.ListCreatorContents.Execute(ctx, queries.ListCreatorContentsQuery{Creator: creator})
	if err != nil {
		return httptransport.CreatorContentsResponse{}, err
	}
	return httptransport.CreatorContentsResponse{
		Creator:    creator,
		ContentIDs: result.ContentIDs,
	}, nil
}

// ListUserSubscriptionsHandler godoc
// @Summary List the caller's subscription ids
// @Tags content-ledger
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Param X-User-Id header string true "Authenticated caller identity"
// @Success 200 {object} httptransport.UserSubscriptionsResponse
// @Router /api/v1/me/subscriptions [get]
func (h Handler) ListUserSubscriptionsHandler(ctx context.Context, caller string) (httptransport.UserSubscriptionsResponse, error) {
	result, err := h.ListSubscriptions.Execute(ctx, queries.ListUserSubscriptionsQuery{Subscriber: caller})
	if err != nil {
		return httptransport.UserSubscriptionsResponse{}, err
	}
	return httptransport.UserSubscriptionsResponse{
		Subscriber:      caller,
		SubscriptionIDs: result.SubscriptionIDs,
	}, nil
}

// CountActiveContentsHandler godoc
// @Summary Count active content listings
// @Tags content-ledger
// @Produce json
// @Security BearerAuth
// @Param X-Request-Id header string true "Request correlation id"
// @Success 200 {object} httptransport.ActiveContentsResponse
// @Router /api/v1/contents/stats/active [get]
func (h Handler) CountActiveContentsHandler(ctx context.Context) (httptransport.ActiveContentsResponse, error) {
	result, err := h.CountActive.Execute(ctx)
	if err != nil {
		return httptransport.ActiveContentsResponse{}, err
	}
	return httptransport.ActiveContentsResponse{ActiveContents: result.ActiveContents}, nil
}

func mapContent(content entities.Content) httptransport.ContentDTO {
	return httptransport.ContentDTO{
		ContentID:        content.ContentID,
		Creator:          content.Creator,
		Title:            content.Title,
		Description:      content.Description,
		PriceCents:       content.PriceCents,
		TotalSubscribers: content.TotalSubscribers,
		IsActive:         content.IsActive,
		CreatedAt:        content.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapSubscription(subscription entities.Subscription) httptransport.SubscriptionDTO {
	return httptransport.SubscriptionDTO{
		SubscriptionID: subscription.SubscriptionID,
		Subscriber:     subscription.Subscriber,
		ContentID:      subscription.ContentID,
		ExpiresAt:      subscription.ExpiresAt.UTC().Format(time.RFC3339),
		IsActive:       subscription.IsActive,
		SubscribedAt:   subscription.SubscribedAt.UTC().Format(time.RFC3339),
	}
}
