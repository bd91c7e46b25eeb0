package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	contentledger "creatorpass/contexts/creator-economy/content-ledger"
	creatorpayouts "creatorpass/contexts/finance-core/creator-payouts"
	"creatorpass/internal/platform/messaging"
)

func newTestServer() *Server {
	payouts := creatorpayouts.NewInMemoryModule(slog.Default())
	ledger := contentledger.NewInMemoryModule(
		payouts.Service,
		messaging.NewBus(slog.Default()),
		slog.Default(),
	)
	return New(ledger, payouts, slog.Default(), ":0")
}

func authedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Request-Id", "req-1")
	req.Header.Set("X-User-Id", "user-1")
	return req
}

func do(server *Server, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func TestContentCreateRequiresAuthorization(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"title":"Go Patterns","price_cents":500}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contents", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", "req-1")
	req.Header.Set("X-User-Id", "creator-1")

	rr := do(server, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestContentCreateRequiresRequestID(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"title":"Go Patterns","price_cents":500}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contents", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-User-Id", "creator-1")

	rr := do(server, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestContentCreateRequiresUser(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"title":"Go Patterns","price_cents":500}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contents", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Request-Id", "req-1")

	rr := do(server, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestContentCreateSuccess(t *testing.T) {
	server := newTestServer()
	req := authedRequest(http.MethodPost, "/api/v1/contents", []byte(`{"title":"Go Patterns","price_cents":500}`))
	req.Header.Set("X-User-Id", "creator-1")

	rr := do(server, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Item struct {
			ContentID int64 `json:"content_id"`
			IsActive  bool  `json:"is_active"`
		} `json:"item"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Item.ContentID != 1 || !resp.Item.IsActive {
		t.Fatalf("unexpected response %s", rr.Body.String())
	}
}

func TestContentGetRejectsNonNumericID(t *testing.T) {
	server := newTestServer()
	rr := do(server, authedRequest(http.MethodGet, "/api/v1/contents/abc", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestContentGetUnknownIDIsNotFound(t *testing.T) {
	server := newTestServer()
	rr := do(server, authedRequest(http.MethodGet, "/api/v1/contents/42", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSubscribeFlowStatusMapping(t *testing.T) {
	server := newTestServer()

	create := authedRequest(http.MethodPost, "/api/v1/contents", []byte(`{"title":"Go Patterns","price_cents":500}`))
	create.Header.Set("X-User-Id", "creator-1")
	if rr := do(server, create); rr.Code != http.StatusCreated {
		t.Fatalf("create failed: %d body=%s", rr.Code, rr.Body.String())
	}

	// Missing idempotency key.
	subscribe := authedRequest(http.MethodPost, "/api/v1/contents/1/subscribe", []byte(`{"payment_cents":500}`))
	if rr := do(server, subscribe); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without idempotency key, got %d", rr.Code)
	}

	// Underpayment maps to 402.
	under := authedRequest(http.MethodPost, "/api/v1/contents/1/subscribe", []byte(`{"payment_cents":499}`))
	under.Header.Set("Idempotency-Key", "idem-under")
	if rr := do(server, under); rr.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d body=%s", rr.Code, rr.Body.String())
	}

	// Self-subscription maps to 403.
	self := authedRequest(http.MethodPost, "/api/v1/contents/1/subscribe", []byte(`{"payment_cents":500}`))
	self.Header.Set("X-User-Id", "creator-1")
	self.Header.Set("Idempotency-Key", "idem-self")
	if rr := do(server, self); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	subscribe = authedRequest(http.MethodPost, "/api/v1/contents/1/subscribe", []byte(`{"payment_cents":500}`))
	subscribe.Header.Set("Idempotency-Key", "idem-1")
	if rr := do(server, subscribe); rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	// Replay of the same key returns 200, not 201.
	replay := authedRequest(http.MethodPost, "/api/v1/contents/1/subscribe", []byte(`{"payment_cents":500}`))
	replay.Header.Set("Idempotency-Key", "idem-1")
	if rr := do(server, replay); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on replay, got %d body=%s", rr.Code, rr.Body.String())
	}

	// A second purchase while the first is active maps to 409.
	dup := authedRequest(http.MethodPost, "/api/v1/contents/1/subscribe", []byte(`{"payment_cents":500}`))
	dup.Header.Set("Idempotency-Key", "idem-2")
	if rr := do(server, dup); rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}

	access := authedRequest(http.MethodGet, "/api/v1/contents/1/access", nil)
	rr := do(server, access)
	if rr.Code != http.StatusOK {
		t.Fatalf("access check failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var accessResp struct {
		HasAccess bool `json:"has_access"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &accessResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !accessResp.HasAccess {
		t.Fatalf("expected access granted, body=%s", rr.Body.String())
	}
}

func TestUpdateContentForbiddenForNonOwner(t *testing.T) {
	server := newTestServer()

	create := authedRequest(http.MethodPost, "/api/v1/contents", []byte(`{"title":"Go Patterns","price_cents":500}`))
	create.Header.Set("X-User-Id", "creator-1")
	if rr := do(server, create); rr.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", rr.Code)
	}

	update := authedRequest(http.MethodPut, "/api/v1/contents/1", []byte(`{"title":"Hijacked","price_cents":1}`))
	if rr := do(server, update); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestActiveContentStats(t *testing.T) {
	server := newTestServer()

	for _, title := range []string{"One", "Two"} {
		create := authedRequest(http.MethodPost, "/api/v1/contents", []byte(`{"title":"`+title+`","price_cents":100}`))
		create.Header.Set("X-User-Id", "creator-1")
		if rr := do(server, create); rr.Code != http.StatusCreated {
			t.Fatalf("create failed: %d", rr.Code)
		}
	}
	toggle := authedRequest(http.MethodPost, "/api/v1/contents/1/toggle", nil)
	toggle.Header.Set("X-User-Id", "creator-1")
	if rr := do(server, toggle); rr.Code != http.StatusOK {
		t.Fatalf("toggle failed: %d", rr.Code)
	}

	rr := do(server, authedRequest(http.MethodGet, "/api/v1/contents/stats/active", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("stats failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		ActiveContents int64 `json:"active_contents"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ActiveContents != 1 {
		t.Fatalf("expected 1 active listing, got %d", resp.ActiveContents)
	}
}
