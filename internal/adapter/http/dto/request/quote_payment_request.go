package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrInvalidPaymentPayload = errors.New("invalid payment payload")

// PayDepositRequest is the payload of the deposit route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas; otherwise the typed fields are assembled into one. The amount is
// never taken from the request.
type PayDepositRequest struct {
	MPPayload           json.RawMessage `json:"mp_payload"`
	PaymentMethodID     string          `json:"payment_method_id"`
	Token               string          `json:"token"`
	Installments        int             `json:"installments"`
	IssuerID            string          `json:"issuer_id"`
	PayerEmail          string          `json:"payer_email"`
	PayerID             string          `json:"payer_id"`
	StatementDescriptor string          `json:"statement_descriptor"`
}

// ParsePayDepositRequest accepts either the typed body or a bare Mercado Pago
// payload. An empty body yields an empty payload.
func ParsePayDepositRequest(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidPaymentPayload
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, ErrInvalidPaymentPayload
	}
	if wrapped, ok := envelope["mp_payload"]; ok {
		w := strings.TrimSpace(string(wrapped))
		if w == "" || w == "null" {
			return nil, ErrInvalidPaymentPayload
		}
		return wrapped, nil
	}
	_, hasEmail := envelope["payer_email"]
	_, hasID := envelope["payer_id"]
	if !hasEmail && !hasID {
		return json.RawMessage(raw), nil
	}

	var req PayDepositRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, ErrInvalidPaymentPayload
	}
	return req.MercadoPagoPayload()
}

// MercadoPagoPayload renders the typed fields in the provider's schema.
func (r PayDepositRequest) MercadoPagoPayload() (json.RawMessage, error) {
	body := map[string]any{}
	setString(body, "payment_method_id", r.PaymentMethodID)
	setString(body, "token", r.Token)
	setString(body, "issuer_id", r.IssuerID)
	setString(body, "statement_descriptor", r.StatementDescriptor)
	if r.Installments > 0 {
		body["installments"] = r.Installments
	}
	payer := map[string]any{}
	setString(payer, "email", r.PayerEmail)
	setString(payer, "id", r.PayerID)
	if len(payer) > 0 {
		body["payer"] = payer
	}
	return json.Marshal(body)
}

func setString(m map[string]any, key, v string) {
	if v = strings.TrimSpace(v); v != "" {
		m[key] = v
	}
}
