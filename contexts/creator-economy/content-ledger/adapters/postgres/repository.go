package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"creatorpass/contexts/creator-economy/content-ledger/domain/entities"
	domainerrors "creatorpass/contexts/creator-economy/content-ledger/domain/errors"
	"creatorpass/contexts/creator-economy/content-ledger/domain/services"
	"creatorpass/contexts/creator-economy/content-ledger/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	counterContentID      = "content_id"
	counterSubscriptionID = "subscription_id"

	uniqueViolationCode = "23505"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateContent(ctx context.Context, draft ports.NewContent) (entities.Content, error) {
	content, err := entities.NewContent(draft.Creator, draft.Title, draft.Description, draft.PriceCents, draft.CreatedAt)
	if err != nil {
		return entities.Content{}, err
	}

	var row contentModel
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, counterContentID)
		if err != nil {
			return err
		}
		row = contentModel{
			ContentID:        id,
			Creator:          content.Creator,
			Title:            content.Title,
			Description:      content.Description,
			PriceCents:       content.PriceCents,
			TotalSubscribers: 0,
			IsActive:         true,
			CreatedAt:        content.CreatedAt,
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return entities.Content{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetContent(ctx context.Context, contentID int64) (entities.Content, error) {
	if contentID <= 0 {
		return entities.Content{}, domainerrors.ErrContentNotFound
	}

	var row contentModel
	err := r.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Content{}, domainerrors.ErrContentNotFound
		}
		return entities.Content{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateContent(ctx context.Context, contentID int64, update ports.ContentUpdate) (entities.Content, error) {
	if strings.TrimSpace(update.Title) == "" || update.PriceCents <= 0 {
		return entities.Content{}, domainerrors.ErrInvalidInput
	}

	var row contentModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockContent(tx, contentID, &row); err != nil {
			return err
		}
		row.Title = update.Title
		row.Description = update.Description
		row.PriceCents = update.PriceCents
		return tx.Save(&row).Error
	})
	if err != nil {
		return entities.Content{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ToggleContentStatus(ctx context.Context, contentID int64) (entities.Content, error) {
	var row contentModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockContent(tx, contentID, &row); err != nil {
			return err
		}
		row.IsActive = !row.IsActive
		return tx.Save(&row).Error
	})
	if err != nil {
		return entities.Content{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListContentIDsByCreator(ctx context.Context, creator string) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).
		Model(&contentModel{}).
		Where("creator = ?", creator).
		Order("content_id ASC").
		Pluck("content_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *Repository) CountActiveContents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&contentModel{}).
		Where("is_active = ?", true).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CreateSubscriptionWithPayment writes the purchase inside one transaction.
// The payment transfer is the final statement, so a rejected transfer rolls
// back the subscription row, the counter bump and the cumulative counter.
func (r *Repository) CreateSubscriptionWithPayment(
	ctx context.Context,
	draft ports.NewSubscription,
	gateway ports.PaymentGateway,
) (entities.Subscription, error) {
	var row subscriptionModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var content contentModel
		if err := lockContent(tx, draft.ContentID, &content); err != nil {
			return err
		}

		var historyRows []subscriptionModel
		if err := tx.
			Where("subscriber = ?", draft.Subscriber).
			Order("subscription_id ASC").
			Find(&historyRows).
			Error; err != nil {
			return err
		}
		history := make([]entities.Subscription, 0, len(historyRows))
		for _, item := range historyRows {
			history = append(history, item.toEntity())
		}

		if err := services.EvaluateSubscribeEligibility(
			content.toEntity(),
			history,
			draft.Subscriber,
			draft.PaymentCents,
			draft.SubscribedAt,
		); err != nil {
			return err
		}

		id, err := nextID(tx, counterSubscriptionID)
		if err != nil {
			return err
		}
		row = subscriptionModel{
			SubscriptionID: id,
			Subscriber:     draft.Subscriber,
			ContentID:      draft.ContentID,
			ExpiresAt:      draft.ExpiresAt.UTC(),
			IsActive:       true,
			SubscribedAt:   draft.SubscribedAt.UTC(),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		if err := tx.Model(&contentModel{}).
			Where("content_id = ?", content.ContentID).
			Update("total_subscribers", gorm.Expr("total_subscribers + 1")).
			Error; err != nil {
			return err
		}

		transfer := ports.PaymentTransfer{
			Payer:       draft.Subscriber,
			Recipient:   content.Creator,
			AmountCents: draft.PaymentCents,
			ContentID:   content.ContentID,
			OccurredAt:  draft.SubscribedAt.UTC(),
		}
		if err := gateway.Pay(ctx, transfer); err != nil {
			return fmt.Errorf("%w: %v", domainerrors.ErrPaymentTransferFailed, err)
		}
		return nil
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetSubscription(ctx context.Context, subscriptionID int64) (entities.Subscription, error) {
	var row subscriptionModel
	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Subscription{}, domainerrors.ErrSubscriptionNotFound
		}
		return entities.Subscription{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListSubscriptionIDsByUser(ctx context.Context, subscriber string) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).
		Model(&subscriptionModel{}).
		Where("subscriber = ?", subscriber).
		Order("subscription_id ASC").
		Pluck("subscription_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *Repository) ListSubscriptionsByUser(ctx context.Context, subscriber string) ([]entities.Subscription, error) {
	var rows []subscriptionModel
	err := r.db.WithContext(ctx).
		Where("subscriber = ?", subscriber).
		Order("subscription_id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Subscription, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListSubscriptionIDsByContent(ctx context.Context, contentID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).
		Model(&subscriptionModel{}).
		Where("content_id = ?", contentID).
		Order("subscription_id ASC").
		Pluck("subscription_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *Repository) Get(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("key = ? AND expires_at > ?", key, now.UTC()).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, err
	}
	return ports.IdempotencyRecord{
		Key:            row.Key,
		RequestHash:    row.RequestHash,
		SubscriptionID: row.SubscriptionID,
		ExpiresAt:      row.ExpiresAt,
	}, true, nil
}

func (r *Repository) Put(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModel{
		Key:            record.Key,
		RequestHash:    record.RequestHash,
		SubscriptionID: record.SubscriptionID,
		ExpiresAt:      record.ExpiresAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		// A concurrent writer already stored this key; the first record wins.
		if isUniqueViolation(err) {
			return nil
		}
		return err
	}
	return nil
}

// nextID bumps the named dense counter under a row lock, which also
// serializes ledger writes of the same kind.
func nextID(tx *gorm.DB, name string) (int64, error) {
	var counter counterModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		First(&counter).
		Error; err != nil {
		return 0, fmt.Errorf("load %s counter: %w", name, err)
	}
	counter.Value++
	if err := tx.Save(&counter).Error; err != nil {
		return 0, fmt.Errorf("bump %s counter: %w", name, err)
	}
	return counter.Value, nil
}

func lockContent(tx *gorm.DB, contentID int64, row *contentModel) error {
	if contentID <= 0 {
		return domainerrors.ErrContentNotFound
	}
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("content_id = ?", contentID).
		First(row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrContentNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

type contentModel struct {
	ContentID        int64     `gorm:"column:content_id;primaryKey"`
	Creator          string    `gorm:"column:creator"`
	Title            string    `gorm:"column:title"`
	Description      string    `gorm:"column:description"`
	PriceCents       int64     `gorm:"column:price_cents"`
	TotalSubscribers int64     `gorm:"column:total_subscribers"`
	IsActive         bool      `gorm:"column:is_active"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (contentModel) TableName() string { return "contents" }

func (m contentModel) toEntity() entities.Content {
	return entities.Content{
		ContentID:        m.ContentID,
		Creator:          m.Creator,
		Title:            m.Title,
		Description:      m.Description,
		PriceCents:       m.PriceCents,
		TotalSubscribers: m.TotalSubscribers,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt.UTC(),
	}
}

type subscriptionModel struct {
	SubscriptionID int64     `gorm:"column:subscription_id;primaryKey"`
	Subscriber     string    `gorm:"column:subscriber"`
	ContentID      int64     `gorm:"column:content_id"`
	ExpiresAt      time.Time `gorm:"column:expires_at"`
	IsActive       bool      `gorm:"column:is_active"`
	SubscribedAt   time.Time `gorm:"column:subscribed_at"`
}

func (subscriptionModel) TableName() string { return "subscriptions" }

func (m subscriptionModel) toEntity() entities.Subscription {
	return entities.Subscription{
		SubscriptionID: m.SubscriptionID,
		Subscriber:     m.Subscriber,
		ContentID:      m.ContentID,
		ExpiresAt:      m.ExpiresAt.UTC(),
		IsActive:       m.IsActive,
		SubscribedAt:   m.SubscribedAt.UTC(),
	}
}

type counterModel struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value int64  `gorm:"column:value"`
}

func (counterModel) TableName() string { return "ledger_counters" }

type idempotencyModel struct {
	Key            string    `gorm:"column:key;primaryKey"`
	RequestHash    string    `gorm:"column:request_hash"`
	SubscriptionID int64     `gorm:"column:subscription_id"`
	ExpiresAt      time.Time `gorm:"column:expires_at"`
}

func (idempotencyModel) TableName() string { return "ledger_idempotency_keys" }
