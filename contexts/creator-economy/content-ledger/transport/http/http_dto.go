package httptransport

type CreateContentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
}

type UpdateContentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
}

type SubscribeRequest struct {
	PaymentCents int64 `json:"payment_cents"`
}

type ContentDTO struct {
	ContentID        int64  `json:"content_id"`
	Creator          string `json:"creator"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	PriceCents       int64  `json:"price_cents"`
	TotalSubscribers int64  `json:"total_subscribers"`
	IsActive         bool   `json:"is_active"`
	CreatedAt        string `json:"created_at"`
}

type ContentResponse struct {
	Item ContentDTO `json:"item"`
}

type SubscriptionDTO struct {
	SubscriptionID int64  `json:"subscription_id"`
	Subscriber     string `json:"subscriber"`
	ContentID      int64  `json:"content_id"`
	ExpiresAt      string `json:"expires_at"`
	IsActive       bool   `json:"is_active"`
	SubscribedAt   string `json:"subscribed_at"`
}

type SubscribeResponse struct {
	Subscription SubscriptionDTO `json:"subscription"`
	Replayed     bool            `json:"replayed,omitempty"`
}

type CreatorContentsResponse struct {
	Creator    string  `json:"creator"`
	ContentIDs []int64 `json:"content_ids"`
}

type UserSubscriptionsResponse struct {
	Subscriber      string  `json:"subscriber"`
	SubscriptionIDs []int64 `json:"subscription_ids"`
}

type AccessResponse struct {
	ContentID int64 `json:"content_id"`
	HasAccess bool  `json:"has_access"`
}

type ActiveContentsResponse struct {
	ActiveContents int64 `json:"active_contents"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
