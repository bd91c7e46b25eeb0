package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPayoutBalanceRequiresAuthorization(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payouts/balance", nil)
	req.Header.Set("X-Request-Id", "req-1")
	req.Header.Set("X-User-Id", "creator-1")

	rr := do(server, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPayoutBalanceReflectsPurchases(t *testing.T) {
	server := newTestServer()

	create := authedRequest(http.MethodPost, "/api/v1/contents", []byte(`{"title":"Go Patterns","price_cents":500}`))
	create.Header.Set("X-User-Id", "creator-1")
	if rr := do(server, create); rr.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", rr.Code)
	}

	subscribe := authedRequest(http.MethodPost, "/api/v1/contents/1/subscribe", []byte(`{"payment_cents":750}`))
	subscribe.Header.Set("Idempotency-Key", "idem-1")
	if rr := do(server, subscribe); rr.Code != http.StatusCreated {
		t.Fatalf("subscribe failed: %d body=%s", rr.Code, rr.Body.String())
	}

	balance := authedRequest(http.MethodGet, "/api/v1/payouts/balance", nil)
	balance.Header.Set("X-User-Id", "creator-1")
	rr := do(server, balance)
	if rr.Code != http.StatusOK {
		t.Fatalf("balance failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var balanceResp struct {
		Account     string `json:"account"`
		AmountCents int64  `json:"amount_cents"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &balanceResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// The full attached amount is routed, overpayment included.
	if balanceResp.Account != "creator-1" || balanceResp.AmountCents != 750 {
		t.Fatalf("unexpected balance %+v", balanceResp)
	}

	payments := authedRequest(http.MethodGet, "/api/v1/payouts/payments", nil)
	payments.Header.Set("X-User-Id", "creator-1")
	rr = do(server, payments)
	if rr.Code != http.StatusOK {
		t.Fatalf("payments failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var paymentsResp struct {
		Items []struct {
			Payer       string `json:"payer"`
			AmountCents int64  `json:"amount_cents"`
			ContentID   int64  `json:"content_id"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &paymentsResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(paymentsResp.Items) != 1 {
		t.Fatalf("expected one payment, got %d", len(paymentsResp.Items))
	}
	item := paymentsResp.Items[0]
	if item.Payer != "user-1" || item.AmountCents != 750 || item.ContentID != 1 {
		t.Fatalf("unexpected payment %+v", item)
	}
}
