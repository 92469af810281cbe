package models

// EventNewTransactionsAvailable is the only webhook event that triggers a sync
const EventNewTransactionsAvailable = "NEW_TRANSACTIONS_AVAILABLE"

// WebhookEvent is the notification pushed by the transaction-aggregation API
type WebhookEvent struct {
	Event          string            `json:"event"`
	Merchant       *UpstreamMerchant `json:"merchant"`
	ExternalUserID string            `json:"external_user_id"`
}

// MerchantID returns the merchant identifier, empty when absent
func (e WebhookEvent) MerchantID() string {
	if e.Merchant == nil {
		return ""
	}
	return e.Merchant.ID.String()
}

// WebhookResponse acknowledges a webhook delivery
type WebhookResponse struct {
	Message string `json:"message"`
	Count   *int   `json:"count,omitempty"`
}
