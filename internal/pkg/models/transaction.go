package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Order statuses reported by the upstream API. The field is free-form, these
// are the values the summary logic cares about.
const (
	OrderStatusCompleted = "COMPLETED"
	OrderStatusPending   = "PENDING"
	OrderStatusCancelled = "CANCELLED"

	// OrderStatusUnknown labels rows stored without a status
	OrderStatusUnknown = "UNKNOWN"
)

// TransactionRecord is one row of the transactions table
type TransactionRecord struct {
	ID             int64   `json:"id" db:"id"`
	TransactionID  string  `json:"transactionId" db:"transaction_id"`
	ExternalID     *string `json:"externalId" db:"external_id"`
	Datetime       *string `json:"datetime" db:"datetime"`
	URL            *string `json:"url" db:"url"`
	OrderStatus    *string `json:"orderStatus" db:"order_status"`
	PaymentMethods string  `json:"paymentMethods" db:"payment_methods"`
	Price          string  `json:"price" db:"price"`
	Products       string  `json:"products" db:"products"`
	MerchantID     *string `json:"merchantId" db:"merchant_id"`
	MerchantName   *string `json:"merchantName" db:"merchant_name"`
	RawData        string  `json:"rawData" db:"raw_data"`
}

// StatusLabel returns the order status used for grouping
func (r TransactionRecord) StatusLabel() string {
	if r.OrderStatus == nil || *r.OrderStatus == "" {
		return OrderStatusUnknown
	}
	return *r.OrderStatus
}

// FlexibleID accepts an identifier encoded either as a JSON string or a JSON number
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or a number: %w", err)
	}
	*id = FlexibleID(n.String())
	return nil
}

// String returns the identifier as a plain string
func (id FlexibleID) String() string {
	return string(id)
}

// UpstreamMerchant is the merchant descriptor embedded in upstream payloads
type UpstreamMerchant struct {
	ID   FlexibleID `json:"id"`
	Name string     `json:"name,omitempty"`
}

// UpstreamTransaction is one item of a transactions/sync page.
// Raw keeps the item exactly as received.
type UpstreamTransaction struct {
	ID             FlexibleID        `json:"id"`
	ExternalID     *string           `json:"external_id"`
	Datetime       *string           `json:"datetime"`
	URL            *string           `json:"url"`
	OrderStatus    *string           `json:"order_status"`
	PaymentMethods json.RawMessage   `json:"payment_methods"`
	Price          json.RawMessage   `json:"price"`
	Products       json.RawMessage   `json:"products"`
	Merchant       *UpstreamMerchant `json:"merchant"`
	Raw            json.RawMessage   `json:"-"`
}

// UnmarshalJSON decodes the known fields and keeps a copy of the payload
func (t *UpstreamTransaction) UnmarshalJSON(data []byte) error {
	type alias UpstreamTransaction
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*t = UpstreamTransaction(a)
	t.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// SyncRequest is the body sent to the upstream transactions/sync endpoint.
// Cursor is always sent, null on the first page.
type SyncRequest struct {
	ExternalUserID    string  `json:"external_user_id,omitempty"`
	MerchantID        string  `json:"merchant_id,omitempty"`
	MerchantAccountID any     `json:"merchantAccountId,omitempty"`
	Cursor            *string `json:"cursor"`
}

// SyncPageRequest is the body accepted by the single-page sync passthrough
type SyncPageRequest struct {
	MerchantAccountID any     `json:"merchantAccountId"`
	Cursor            *string `json:"cursor"`
}

// SyncPage is one page returned by the upstream transactions/sync endpoint
type SyncPage struct {
	Transactions []UpstreamTransaction `json:"transactions"`
	NextCursor   *string               `json:"next_cursor"`
}

// HasMore reports whether the upstream supplied a continuation token
func (p *SyncPage) HasMore() bool {
	return p.NextCursor != nil && *p.NextCursor != ""
}

// SessionRequest is the body sent to the upstream session/create endpoint
type SessionRequest struct {
	ExternalUserID string `json:"external_user_id"`
	Type           string `json:"type"`
}

// Insert outcome statuses
const (
	InsertStatusInserted  = "inserted"
	InsertStatusDuplicate = "duplicate"
	InsertStatusFailed    = "failed"
)

// InsertOutcome is the result of persisting one upstream transaction
type InsertOutcome struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Error         string `json:"error,omitempty"`
}

// SyncResult describes one completed drain of the upstream API
type SyncResult struct {
	SyncID         string          `json:"sync_id"`
	ExternalUserID string          `json:"external_user_id"`
	MerchantID     string          `json:"merchant_id"`
	Pages          int             `json:"pages"`
	Fetched        int             `json:"fetched"`
	Outcomes       []InsertOutcome `json:"outcomes"`
}

// Count returns how many outcomes carry the given status
func (r *SyncResult) Count(status string) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// TransactionsSyncedEvent is published after every drain
type TransactionsSyncedEvent struct {
	SyncID         string    `json:"sync_id"`
	ExternalUserID string    `json:"external_user_id"`
	MerchantID     string    `json:"merchant_id"`
	Fetched        int       `json:"fetched"`
	Inserted       int       `json:"inserted"`
	Duplicates     int       `json:"duplicates"`
	Failed         int       `json:"failed"`
	SyncedAt       time.Time `json:"synced_at"`
}
