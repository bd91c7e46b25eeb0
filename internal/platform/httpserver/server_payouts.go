package httpserver

import (
	"errors"
	"net/http"
	"time"

	domainerrors "creatorpass/contexts/finance-core/creator-payouts/domain/errors"
	payoutshttp "creatorpass/contexts/finance-core/creator-payouts/transport/http"
)

func (s *Server) handlePayoutBalance(w http.ResponseWriter, r *http.Request) {
	if !requireAuthorization(w, r) || !requireRequestID(w, r) {
		return
	}
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}

	balance, err := s.payouts.Service.GetBalance(r.Context(), caller)
	if err != nil {
		s.writePayoutsDomainError(w, err)
		return
	}

	resp := payoutshttp.BalanceResponse{
		Account:     caller,
		AmountCents: balance.AmountCents,
	}
	if !balance.UpdatedAt.IsZero() {
		resp.UpdatedAt = balance.UpdatedAt.UTC().Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePayoutPayments(w http.ResponseWriter, r *http.Request) {
	if !requireAuthorization(w, r) || !requireRequestID(w, r) {
		return
	}
	caller, ok := requireUser(w, r)
	if !ok {
		return
	}

	payments, err := s.payouts.Service.ListPayments(r.Context(), caller)
	if err != nil {
		s.writePayoutsDomainError(w, err)
		return
	}

	items := make([]payoutshttp.PaymentDTO, 0, len(payments))
	for _, payment := range payments {
		items = append(items, payoutshttp.PaymentDTO{
			PaymentID:   payment.PaymentID,
			Payer:       payment.Payer,
			AmountCents: payment.AmountCents,
			ContentID:   payment.ContentID,
			ReceivedAt:  payment.ReceivedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, payoutshttp.PaymentsResponse{Items: items})
}

func (s *Server) writePayoutsDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrInvalidTransfer):
		writePayoutsError(w, http.StatusBadRequest, "invalid_transfer", err.Error())
	case errors.Is(err, domainerrors.ErrTransferRejected):
		writePayoutsError(w, http.StatusFailedDependency, "transfer_rejected", err.Error())
	default:
		s.logger.Error("unhandled creator payouts error",
			"event", "http_unhandled_error",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writePayoutsError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePayoutsError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, payoutshttp.ErrorResponse{Code: code, Message: message})
}
