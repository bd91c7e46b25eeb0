package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	domainerrors "creatorpass/contexts/creator-economy/content-ledger/domain/errors"
	httptransport "creatorpass/contexts/creator-economy/content-ledger/transport/http"
)

func (s *Server) handleCreateContent(w http.ResponseWriter, r *http.Request) {
	if !requireAuthorization(w, r) || !requireRequestID(w, r) {
		return
	}
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req httptransport.CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}

	resp, err := s.ledger.Handler.CreateContentHandler(r.Context(), caller, req)
	if err != nil {
		s.writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	if !requireAuthorization(w, r) || !requireRequestID(w, r) {
		return
	}
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}

	resp, err := s.ledger.Handler.GetContentHandler(r.Context(), contentID)
	if err != nil {
		s.writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateContent(w http.ResponseWriter, r *http.Request) {
	if !requireAuthorization(w, r) || !requireRequestID(w, r) {
		return
	}
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}

	var req httptransport.UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}

	resp, err := s.ledger.Handler.UpdateContentHandler(r.Context(), caller, contentID, req)
	if err != nil {
		s.writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleToggleContentStatus(w http.ResponseWriter, r *http.Request) {
	if !requireAuthorization(w, r) || !requireRequestID(w, r) {
		return
	}
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}

	resp, err := s.ledger.Handler.ToggleContentStatusHandler(r.Context(), caller, contentID)
	if err != nil {
		s.writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if !requireAuthorization(w, r) || !requireRequestID(w, r) {
		return
	}
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}
	idempotencyKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))

	var req httptransport.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}

	resp, err := s.ledger.Handler.SubscribeHandler(r.Context(), caller, contentID, req, idempotencyKey)
	if err != nil {
		s.writeLedgerDomainError(w, err)
		return
	}
	status := http.StatusCreated
	if resp.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleCheckAccess(w http.ResponseWriter, r *http.Request) {
	if !requireAuthorization(w, r) || !requireRequestID(w, r) {
		return
	}
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}

	resp, err := s.ledger.Handler.CheckAccessHandler(r.Context(), caller, contentID)
	if err != nil {
		s.writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCreatorContents(w http.ResponseWriter, r *http.Request) {
	if !requireAuthorization(w, r) || !requireRequestID(w, r) {
		return
	}
	creator := strings.TrimSpace(r.PathValue("creator_id"))
	if creator == "" {
		writeLedgerError(w, http.StatusBadRequest, "invalid_creator_id", "creator_id must not be empty")
		return
	}

	resp, err := s.ledger.Handler.ListCreatorContentsHandler(r.Context(), creator)
	if err != nil {
		s.writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListUserSubscriptions(w http.ResponseWriter, r *http.Request) {
	if !requireAuthorization(w, r) || !requireRequestID(w, r) {
		return
	}
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp, err := s.ledger.Handler.ListUserSubscriptionsHandler(r.Context(), caller)
	if err != nil {
		s.writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCountActiveContents(w http.ResponseWriter, r *http.Request) {
	if !requireAuthorization(w, r) || !requireRequestID(w, r) {
		return
	}

	resp, err := s.ledger.Handler.CountActiveContentsHandler(r.Context())
	if err != nil {
		s.writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeLedgerDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrInvalidInput):
		writeLedgerError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, domainerrors.ErrIdempotencyKeyRequired):
		writeLedgerError(w, http.StatusBadRequest, "idempotency_key_required", err.Error())
	case errors.Is(err, domainerrors.ErrContentNotFound),
		errors.Is(err, domainerrors.ErrSubscriptionNotFound):
		writeLedgerError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domainerrors.ErrNotCreator),
		errors.Is(err, domainerrors.ErrSelfSubscription):
		writeLedgerError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, domainerrors.ErrInsufficientPayment):
		writeLedgerError(w, http.StatusPaymentRequired, "insufficient_payment", err.Error())
	case errors.Is(err, domainerrors.ErrContentInactive),
		errors.Is(err, domainerrors.ErrAlreadySubscribed),
		errors.Is(err, domainerrors.ErrIdempotencyConflict):
		writeLedgerError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domainerrors.ErrPaymentTransferFailed):
		writeLedgerError(w, http.StatusFailedDependency, "payment_transfer_failed", err.Error())
	default:
		s.logger.Error("unhandled content ledger error",
			"event", "http_unhandled_error",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeLedgerError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
