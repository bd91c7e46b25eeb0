package httptransport

type BalanceResponse struct {
	Account     string `json:"account"`
	AmountCents int64  `json:"amount_cents"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type PaymentDTO struct {
	PaymentID   string `json:"payment_id"`
	Payer       string `json:"payer"`
	AmountCents int64  `json:"amount_cents"`
	ContentID   int64  `json:"content_id"`
	ReceivedAt  string `json:"received_at"`
}

type PaymentsResponse struct {
	Items []PaymentDTO `json:"items"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
