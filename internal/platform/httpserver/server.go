package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	contentledger "creatorpass/contexts/creator-economy/content-ledger"
	ledgerhttp "creatorpass/contexts/creator-economy/content-ledger/transport/http"
	creatorpayouts "creatorpass/contexts/finance-core/creator-payouts"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "creatorpass/internal/platform/httpserver/docs"
)

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	ledger  contentledger.Module
	payouts creatorpayouts.Module
}

func New(
	ledger contentledger.Module,
	payouts creatorpayouts.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		ledger:  ledger,
		payouts: payouts,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/v1/contents", s.handleCreateContent)
	s.mux.HandleFunc("GET /api/v1/contents/{content_id}", s.handleGetContent)
	s.mux.HandleFunc("PUT /api/v1/contents/{content_id}", s.handleUpdateContent)
	s.mux.HandleFunc("POST /api/v1/contents/{content_id}/toggle", s.handleToggleContentStatus)
	s.mux.HandleFunc("POST /api/v1/contents/{content_id}/subscribe", s.handleSubscribe)
	s.mux.HandleFunc("GET /api/v1/contents/{content_id}/access", s.handleCheckAccess)
	s.mux.HandleFunc("GET /api/v1/contents/stats/active", s.handleCountActiveContents)
	s.mux.HandleFunc("GET /api/v1/creators/{creator_id}/contents", s.handleListCreatorContents)
	s.mux.HandleFunc("GET /api/v1/me/subscriptions", s.handleListUserSubscriptions)

	s.mux.HandleFunc("GET /api/v1/payouts/balance", s.handlePayoutBalance)
	s.mux.HandleFunc("GET /api/v1/payouts/payments", s.handlePayoutPayments)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func requireAuthorization(w http.ResponseWriter, r *http.Request) bool {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		writeLedgerError(w, http.StatusUnauthorized, "unauthorized", "Authorization bearer token is required")
		return false
	}
	return true
}

func requireRequestID(w http.ResponseWriter, r *http.Request) bool {
	if strings.TrimSpace(r.Header.Get("X-Request-Id")) == "" {
		writeLedgerError(w, http.StatusBadRequest, "missing_request_id", "X-Request-Id header is required")
		return false
	}
	return true
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if userID == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return "", false
	}
	return userID, true
}

func contentIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("content_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_content_id", "content_id must be an integer")
		return 0, false
	}
	return id, true
}

func writeLedgerError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ledgerhttp.ErrorResponse{Code: code, Message: message})
}
