package response

import (
	"encoding/json"
	"time"

	"capquote/internal/domain/entities"
)

type QuotePaymentResponse struct {
	PaymentID string    `json:"payment_id"`
	ThreadID  string    `json:"thread_id"`
	VersionID string    `json:"version_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Date      time.Time `json:"date"`

	ProviderPayloadRaw string         `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"provider_payload,omitempty"`
}

func FromQuotePayment(p entities.QuotePayment) QuotePaymentResponse {
	res := QuotePaymentResponse{
		PaymentID:          p.ID,
		ThreadID:           p.ThreadID,
		VersionID:          p.VersionID,
		Amount:             p.Amount,
		Status:             string(p.Status),
		Date:               p.Date,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	if len(p.ProviderPayloadRaw) > 0 {
		var parsed map[string]any
		if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
			res.ProviderPayload = parsed
		}
	}
	return res
}

func FromQuotePayments(ps []entities.QuotePayment) []QuotePaymentResponse {
	out := make([]QuotePaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromQuotePayment(p))
	}
	return out
}
