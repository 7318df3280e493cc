package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"capquote/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway charges quote deposits through the Mercado Pago payments API.
// In mock mode no request leaves the process and every payment is approved.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if IsMockEnabled() {
		log.Printf("[checkout][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		log.Printf("[checkout][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[checkout][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[checkout][gateway] mercado pago client initialized sandbox=%t", strings.HasPrefix(accessToken, "TEST-"))
	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return mockCreate(requestPayload)
	}
	if g == nil || g.client == nil {
		log.Printf("[checkout][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[checkout][gateway] create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[checkout][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[checkout][gateway] sdk create failed external_reference=%s err=%v", req.ExternalReference, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[checkout][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	log.Printf("[checkout][gateway] create success provider_payment_id=%s provider_status=%s external_reference=%s", id, resp.Status, req.ExternalReference)
	return id, resp.Status, b, nil
}

// mockCreate echoes the request back as an approved payment.
func mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	log.Printf("[checkout][gateway] mock create start payload_len=%d", len(requestPayload))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[checkout][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[checkout][gateway] mock create success provider_payment_id=%s", id)
	return id, "approved", b, nil
}

// IsMockEnabled reports whether PAYMENT_GATEWAY_MOCK or MERCADOPAGO_MOCK is switched on.
func IsMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
