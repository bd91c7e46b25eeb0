package application

import (
	"context"
	"errors"
	"testing"
	"time"

	ledgerports "creatorpass/contexts/creator-economy/content-ledger/ports"
	"creatorpass/contexts/finance-core/creator-payouts/adapters/memory"
	domainerrors "creatorpass/contexts/finance-core/creator-payouts/domain/errors"
)

func newService() (Service, *memory.Store) {
	store := memory.NewStore()
	return Service{Repo: store, Clock: store, IDGen: store}, store
}

func TestServicePayCreditsRecipientBalance(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()
	occurred := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, amount := range []int64{500, 700} {
		err := service.Pay(ctx, ledgerports.PaymentTransfer{
			Payer:       "user-1",
			Recipient:   "creator-1",
			AmountCents: amount,
			ContentID:   1,
			OccurredAt:  occurred,
		})
		if err != nil {
			t.Fatalf("pay failed: %v", err)
		}
	}

	balance, err := service.GetBalance(ctx, "creator-1")
	if err != nil {
		t.Fatalf("get balance failed: %v", err)
	}
	if balance.AmountCents != 1200 {
		t.Fatalf("expected balance 1200, got %d", balance.AmountCents)
	}

	payments, err := service.ListPayments(ctx, "creator-1")
	if err != nil {
		t.Fatalf("list payments failed: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}
	// Newest first.
	if payments[0].AmountCents != 700 || payments[1].AmountCents != 500 {
		t.Fatalf("expected newest-first ordering, got %+v", payments)
	}
	if payments[0].PaymentID == "" || payments[0].PaymentID == payments[1].PaymentID {
		t.Fatalf("expected distinct payment ids, got %q and %q", payments[0].PaymentID, payments[1].PaymentID)
	}
}

func TestServicePayRejectsInvalidTransfers(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	cases := []ledgerports.PaymentTransfer{
		{Payer: "", Recipient: "creator-1", AmountCents: 100},
		{Payer: "user-1", Recipient: "", AmountCents: 100},
		{Payer: "user-1", Recipient: "creator-1", AmountCents: 0},
		{Payer: "user-1", Recipient: "creator-1", AmountCents: -5},
	}
	for _, transfer := range cases {
		if err := service.Pay(ctx, transfer); !errors.Is(err, domainerrors.ErrInvalidTransfer) {
			t.Fatalf("expected invalid transfer for %+v, got %v", transfer, err)
		}
	}
}

func TestServicePaySurfacesRepositoryFailure(t *testing.T) {
	service, store := newService()
	cause := errors.New("processor unavailable")
	store.FailTransfers(cause)

	err := service.Pay(context.Background(), ledgerports.PaymentTransfer{
		Payer:       "user-1",
		Recipient:   "creator-1",
		AmountCents: 100,
	})
	if !errors.Is(err, cause) {
		t.Fatalf("expected repository failure to surface, got %v", err)
	}
}

func TestServiceGetBalanceUnknownAccountIsZero(t *testing.T) {
	service, _ := newService()

	balance, err := service.GetBalance(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get balance failed: %v", err)
	}
	if balance.AmountCents != 0 || balance.Account != "nobody" {
		t.Fatalf("expected zero balance, got %+v", balance)
	}

	if _, err := service.GetBalance(context.Background(), "  "); !errors.Is(err, domainerrors.ErrInvalidTransfer) {
		t.Fatalf("expected invalid account error, got %v", err)
	}
}
