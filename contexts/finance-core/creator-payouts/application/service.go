package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	ledgerports "creatorpass/contexts/creator-economy/content-ledger/ports"
	domainerrors "creatorpass/contexts/finance-core/creator-payouts/domain/errors"
	"creatorpass/contexts/finance-core/creator-payouts/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// Pay implements the content ledger's payment capability: a single
// full-amount transfer to the creator, recorded append-only and credited to
// the creator's balance. The ledger invokes it after its own bookkeeping and
// rolls back when it fails.
func (s Service) Pay(ctx context.Context, transfer ledgerports.PaymentTransfer) error {
	logger := resolveLogger(s.Logger)
	if strings.TrimSpace(transfer.Recipient) == "" ||
		strings.TrimSpace(transfer.Payer) == "" ||
		transfer.AmountCents <= 0 {
		return domainerrors.ErrInvalidTransfer
	}

	paymentID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	receivedAt := transfer.OccurredAt.UTC()
	if receivedAt.IsZero() {
		receivedAt = s.now()
	}

	record := ports.PaymentRecord{
		PaymentID:   paymentID,
		Payer:       transfer.Payer,
		Recipient:   transfer.Recipient,
		AmountCents: transfer.AmountCents,
		ContentID:   transfer.ContentID,
		ReceivedAt:  receivedAt,
	}
	if err := s.Repo.AppendPayment(ctx, record); err != nil {
		logger.Error("payment append failed",
			"event", "creator_payouts_append_failed",
			"module", "finance-core/creator-payouts",
			"layer", "application",
			"recipient", transfer.Recipient,
			"amount_cents", transfer.AmountCents,
			"error", err.Error(),
		)
		return err
	}

	logger.Info("payment routed",
		"event", "creator_payouts_payment_routed",
		"module", "finance-core/creator-payouts",
		"layer", "application",
		"payment_id", record.PaymentID,
		"recipient", record.Recipient,
		"amount_cents", record.AmountCents,
	)
	return nil
}

// GetBalance reports the cumulative credited amount; unknown accounts have a
// zero balance, not an error.
func (s Service) GetBalance(ctx context.Context, account string) (ports.Balance, error) {
	if strings.TrimSpace(account) == "" {
		return ports.Balance{}, domainerrors.ErrInvalidTransfer
	}
	return s.Repo.GetBalance(ctx, account)
}

func (s Service) ListPayments(ctx context.Context, recipient string) ([]ports.PaymentRecord, error) {
	if strings.TrimSpace(recipient) == "" {
		return nil, domainerrors.ErrInvalidTransfer
	}
	return s.Repo.ListPaymentsByRecipient(ctx, recipient)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
