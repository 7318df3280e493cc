package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// QuotePayment is a deposit paid against the selected QuoteVersion of a thread.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (thread_id-index): thread_id
//
// ProviderPayloadRaw keeps the gateway response body for traceability.
type QuotePayment struct {
	ID                 string          `json:"id"`
	ThreadID           string          `json:"thread_id"`
	VersionID          string          `json:"version_id"`
	Amount             float64         `json:"amount"`
	Status             PaymentStatus   `json:"status"`
	Date               time.Time       `json:"date"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
