package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type PaymentRecord struct {
	PaymentID   string
	Payer       string
	Recipient   string
	AmountCents int64
	ContentID   int64
	ReceivedAt  time.Time
}

type Balance struct {
	Account     string
	AmountCents int64
	UpdatedAt   time.Time
}

type Repository interface {
	// AppendPayment records the transfer and credits the recipient's balance
	// as one atomic write.
	AppendPayment(ctx context.Context, record PaymentRecord) error
	GetBalance(ctx context.Context, account string) (Balance, error)
	ListPaymentsByRecipient(ctx context.Context, recipient string) ([]PaymentRecord, error)
}
