package entities

import (
	"strings"
	"time"

	domainerrors "creatorpass/contexts/creator-economy/content-ledger/domain/errors"
)

// Content is a monetizable listing owned by a single creator.
// TotalSubscribers is cumulative: it counts every subscription ever sold
// and is never decremented.
type Content struct {
	ContentID        int64
	Creator          string
	Title            string
	Description      string
	PriceCents       int64
	TotalSubscribers int64
	IsActive         bool
	CreatedAt        time.Time
}

func NewContent(creator string, title string, description string, priceCents int64, createdAt time.Time) (Content, error) {
	if strings.TrimSpace(creator) == "" {
		return Content{}, domainerrors.ErrInvalidInput
	}
	if strings.TrimSpace(title) == "" {
		return Content{}, domainerrors.ErrInvalidInput
	}
	if priceCents <= 0 {
		return Content{}, domainerrors.ErrInvalidInput
	}

	return Content{
		Creator:     creator,
		Title:       title,
		Description: description,
		PriceCents:  priceCents,
		IsActive:    true,
		CreatedAt:   createdAt.UTC(),
	}, nil
}

func (c Content) IsOwnedBy(caller string) bool {
	return c.Creator == caller
}
