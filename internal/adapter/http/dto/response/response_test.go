package response

import (
	"encoding/json"
	"testing"
	"time"

	"capquote/internal/domain/entities"
	"capquote/internal/orderstate"
	"capquote/internal/usecase"
)

func TestFromQuotePayment(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123,"status":"approved"}`)

	res := FromQuotePayment(entities.QuotePayment{
		ID:                 "pay-1",
		ThreadID:           "t-1",
		VersionID:          "v-1",
		Amount:             450,
		Status:             entities.PaymentStatusApproved,
		Date:               now,
		ProviderPayloadRaw: raw,
	})
	if res.PaymentID != "pay-1" || res.ThreadID != "t-1" || res.VersionID != "v-1" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) || res.Amount != 450 {
		t.Fatalf("unexpected date/amount: %+v", res)
	}
	if res.ProviderPayloadRaw != string(raw) || res.ProviderPayload["status"] != "approved" {
		t.Fatalf("unexpected provider payload: %+v", res)
	}

	bad := FromQuotePayment(entities.QuotePayment{ID: "p", ProviderPayloadRaw: json.RawMessage(`{`)})
	if bad.ProviderPayload != nil {
		t.Fatalf("invalid provider json must not be parsed: %+v", bad)
	}
}

func TestFromThread(t *testing.T) {
	th := entities.NewConfigurationThread("t-1", time.Now().UTC())
	res := FromThread(th)
	if res.ThreadID != "t-1" || res.SelectedVersion != nil {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Versions == nil || res.Handoffs == nil || res.ConsistencyChecks == nil {
		t.Fatalf("lists must serialize as []: %+v", res)
	}

	th.State.Versions = []entities.QuoteVersion{{ID: "v-1", Label: "Version 1"}}
	th.State.SelectedVersionID = "v-1"
	res = FromThread(th)
	if res.SelectedVersion == nil || res.SelectedVersion.ID != "v-1" {
		t.Fatalf("expected selected version, got %+v", res.SelectedVersion)
	}
}

func TestFromIngestOutcome(t *testing.T) {
	th := entities.NewConfigurationThread("t-1", time.Now().UTC())
	th.Revision = 3
	th.State.Versions = []entities.QuoteVersion{{ID: "v-1"}}
	out := usecase.IngestOutcome{
		Thread: th,
		Result: orderstate.IngestResult{NewVersionCreated: true, SelectedVersion: &th.State.Versions[0]},
	}
	res := FromIngestOutcome(out)
	if res.ThreadID != "t-1" || res.Revision != 3 || res.VersionCount != 1 || !res.NewVersionCreated {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Extraction != nil {
		t.Fatalf("expected no extraction trace")
	}
}
