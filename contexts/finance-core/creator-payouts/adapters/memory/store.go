package memory

import (
	"context"
	"sync"
	"time"

	"creatorpass/contexts/finance-core/creator-payouts/ports"

	"github.com/google/uuid"
)

// Store is the in-memory balance book: append-only payment records plus a
// cumulative balance per account.
type Store struct {
	mu sync.RWMutex

	paymentsByRecipient map[string][]ports.PaymentRecord
	balances            map[string]ports.Balance

	transferErr error
}

func NewStore() *Store {
	return &Store{
		paymentsByRecipient: make(map[string][]ports.PaymentRecord),
		balances:            make(map[string]ports.Balance),
	}
}

// FailTransfers makes every subsequent AppendPayment return err until called
// again with nil. Used to exercise purchase rollback paths.
func (s *Store) FailTransfers(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transferErr = err
}

func (s *Store) AppendPayment(_ context.Context, record ports.PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.transferErr != nil {
		return s.transferErr
	}

	s.paymentsByRecipient[record.Recipient] = append(s.paymentsByRecipient[record.Recipient], record)
	balance := s.balances[record.Recipient]
	balance.Account = record.Recipient
	balance.AmountCents += record.AmountCents
	balance.UpdatedAt = record.ReceivedAt
	s.balances[record.Recipient] = balance
	return nil
}

func (s *Store) GetBalance(_ context.Context, account string) (ports.Balance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balance, ok := s.balances[account]
	if !ok {
		return ports.Balance{Account: account}, nil
	}
	return balance, nil
}

func (s *Store) ListPaymentsByRecipient(_ context.Context, recipient string) ([]ports.PaymentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.paymentsByRecipient[recipient]
	out := make([]ports.PaymentRecord, 0, len(records))
	// Newest first.
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
	}
	return out, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
