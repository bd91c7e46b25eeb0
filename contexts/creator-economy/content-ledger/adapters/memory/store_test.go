package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "creatorpass/contexts/creator-economy/content-ledger/domain/errors"
	"creatorpass/contexts/creator-economy/content-ledger/ports"
)

type stubGateway struct {
	err       error
	transfers []ports.PaymentTransfer
}

func (g *stubGateway) Pay(_ context.Context, transfer ports.PaymentTransfer) error {
	if g.err != nil {
		return g.err
	}
	g.transfers = append(g.transfers, transfer)
	return nil
}

func seedContent(t *testing.T, store *Store, creator string, priceCents int64) int64 {
	t.Helper()
	content, err := store.CreateContent(context.Background(), ports.NewContent{
		Creator:    creator,
		Title:      "listing",
		PriceCents: priceCents,
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed content failed: %v", err)
	}
	return content.ContentID
}

func TestStoreSubscriptionIDsStayDenseAcrossRollback(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	contentID := seedContent(t, store, "creator-1", 500)
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	draft := ports.NewSubscription{
		Subscriber:   "user-1",
		ContentID:    contentID,
		PaymentCents: 500,
		SubscribedAt: now,
		ExpiresAt:    now.Add(30 * 24 * time.Hour),
	}

	failing := &stubGateway{err: errors.New("declined")}
	_, err := store.CreateSubscriptionWithPayment(ctx, draft, failing)
	if !errors.Is(err, domainerrors.ErrPaymentTransferFailed) {
		t.Fatalf("expected payment transfer failure, got %v", err)
	}

	gateway := &stubGateway{}
	subscription, err := store.CreateSubscriptionWithPayment(ctx, draft, gateway)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if subscription.SubscriptionID != 1 {
		t.Fatalf("rolled back id must be reissued, got %d", subscription.SubscriptionID)
	}

	if len(gateway.transfers) != 1 {
		t.Fatalf("expected one transfer, got %d", len(gateway.transfers))
	}
	transfer := gateway.transfers[0]
	if transfer.Payer != "user-1" || transfer.Recipient != "creator-1" || transfer.AmountCents != 500 {
		t.Fatalf("unexpected transfer %+v", transfer)
	}

	ids, err := store.ListSubscriptionIDsByContent(ctx, contentID)
	if err != nil {
		t.Fatalf("list by content failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("expected content index [1], got %v", ids)
	}
}

func TestStoreCountActiveContentsScansAllIssuedIDs(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	seedContent(t, store, "creator-1", 100)
	seedContent(t, store, "creator-1", 200)
	seedContent(t, store, "creator-2", 300)

	if _, err := store.ToggleContentStatus(ctx, 1); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, err := store.ToggleContentStatus(ctx, 3); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, err := store.ToggleContentStatus(ctx, 3); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	count, err := store.CountActiveContents(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 active, got %d", count)
	}
}

func TestStoreIdempotencyRecordsExpire(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	record := ports.IdempotencyRecord{
		Key:            "idem-1",
		RequestHash:    "hash",
		SubscriptionID: 1,
		ExpiresAt:      now.Add(time.Hour),
	}
	if err := store.Put(ctx, record); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, found, err := store.Get(ctx, "idem-1", now)
	if err != nil || !found {
		t.Fatalf("expected live record, found=%v err=%v", found, err)
	}
	if got.SubscriptionID != 1 {
		t.Fatalf("unexpected record %+v", got)
	}

	_, found, err = store.Get(ctx, "idem-1", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found {
		t.Fatal("expected record expired at its deadline")
	}

	_, found, err = store.Get(ctx, "unknown", now)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found {
		t.Fatal("expected miss for unknown key")
	}
}
