package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParsePayDepositRequest(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		got, err := ParsePayDepositRequest([]byte("  "))
		if err != nil || string(got) != "{}" {
			t.Fatalf("expected {}, got %s err=%v", got, err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParsePayDepositRequest([]byte("{"))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("null mp_payload", func(t *testing.T) {
		_, err := ParsePayDepositRequest([]byte(`{"mp_payload":null}`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("wrapped payload", func(t *testing.T) {
		got, err := ParsePayDepositRequest([]byte(`{"mp_payload":{"payment_method_id":"pix"}}`))
		if err != nil || string(got) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload %s err=%v", got, err)
		}
	})

	t.Run("bare provider payload", func(t *testing.T) {
		raw := `{"payment_method_id":"pix","payer":{"email":"a@b.com"}}`
		got, err := ParsePayDepositRequest([]byte(raw))
		if err != nil || string(got) != raw {
			t.Fatalf("unexpected payload %s err=%v", got, err)
		}
	})

	t.Run("typed fields", func(t *testing.T) {
		got, err := ParsePayDepositRequest([]byte(`{"payment_method_id":"visa","token":"tok","installments":3,"payer_email":" a@b.com "}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var body map[string]any
		if err := json.Unmarshal(got, &body); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		payer := body["payer"].(map[string]any)
		if body["payment_method_id"] != "visa" || body["token"] != "tok" || body["installments"] != float64(3) || payer["email"] != "a@b.com" {
			t.Fatalf("unexpected payload: %v", body)
		}
		if _, ok := body["transaction_amount"]; ok {
			t.Fatalf("amount must not come from the request")
		}
	})
}

func TestIngestResponseRequest_Validate(t *testing.T) {
	if err := (IngestResponseRequest{Text: "  "}).Validate(); !errors.Is(err, ErrEmptyAgentResponse) {
		t.Fatalf("expected ErrEmptyAgentResponse, got %v", err)
	}
	if err := (IngestResponseRequest{Text: "Fabric: Cotton Twill"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandoffRequest_ToEntity(t *testing.T) {
	r := HandoffRequest{FromAgent: " logo-analyzer ", ToAgent: "quote", HandoffType: " logo_analysis "}
	rec := r.ToEntity()
	if rec.FromAgent != "logo-analyzer" || rec.HandoffType != "logo_analysis" || rec.LogoAnalysis != nil {
		t.Fatalf("unexpected record: %+v", rec)
	}
}
