package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"capquote/internal/domain/entities"
	"capquote/internal/usecase/interfaces"
)

var (
	ErrNoSelectedVersion              = errors.New("thread has no selected quote version")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrThreadRepositoryNotConfigured  = errors.New("thread repository not configured")
)

// IQuoteCheckoutUseCase charges the deposit of the selected quote version.
//
// The amount always comes from the stored version's pricing total, never from
// the caller's payload.
type IQuoteCheckoutUseCase interface {
	PayDeposit(ctx context.Context, threadID string, mpPayload json.RawMessage) (entities.QuotePayment, error)
	ListPayments(ctx context.Context, threadID string) ([]entities.QuotePayment, error)
}

type QuoteCheckoutUseCase struct {
	repo       interfaces.IQuotePaymentRepository
	threadRepo interfaces.IThreadRepository
	gateway    interfaces.IPaymentGateway
}

var _ IQuoteCheckoutUseCase = (*QuoteCheckoutUseCase)(nil)

func NewQuoteCheckoutUseCase(repo interfaces.IQuotePaymentRepository, threadRepo interfaces.IThreadRepository, gateway interfaces.IPaymentGateway) *QuoteCheckoutUseCase {
	return &QuoteCheckoutUseCase{repo: repo, threadRepo: threadRepo, gateway: gateway}
}

func (u *QuoteCheckoutUseCase) PayDeposit(ctx context.Context, threadID string, mpPayload json.RawMessage) (entities.QuotePayment, error) {
	log.Printf("[checkout][usecase] pay-deposit start raw_thread_id=%q payload_len=%d", threadID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	threadID = strings.TrimSpace(threadID)
	if threadID == "" {
		return entities.QuotePayment{}, ErrInvalidThreadID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[checkout][usecase] invalid payload thread_id=%s", threadID)
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.QuotePayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.threadRepo == nil {
		return entities.QuotePayment{}, ErrThreadRepositoryNotConfigured
	}

	t, err := u.threadRepo.Get(ctx, threadID)
	if err != nil {
		log.Printf("[checkout][usecase] failed loading thread thread_id=%s err=%v", threadID, err)
		return entities.QuotePayment{}, err
	}
	if t.ID == "" {
		return entities.QuotePayment{}, ErrThreadNotFound
	}
	version, ok := t.State.Selected()
	if !ok || version.Specification.Pricing == nil {
		log.Printf("[checkout][usecase] no selected version thread_id=%s versions=%d", threadID, len(t.State.Versions))
		return entities.QuotePayment{}, ErrNoSelectedVersion
	}
	amount := version.Specification.Pricing.Total
	log.Printf("[checkout][usecase] version loaded thread_id=%s version_id=%s total=%.2f", threadID, version.ID, amount)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
		log.Printf("[checkout][usecase] payload unmarshal failed thread_id=%s err=%v", threadID, err)
		return entities.QuotePayment{}, ErrInvalidMPPayload
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[checkout][usecase] missing payment_method_id thread_id=%s", threadID)
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
		normalizeSandboxPayerFromUserID(reqMap)
		ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[checkout][usecase] missing/invalid payer thread_id=%s", threadID)
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
	}
	// external_reference lets provider events be matched back to the version.
	reqMap["external_reference"] = version.ID
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Cap quote %s (%s)", version.Label, threadID)
	}
	reqMap["transaction_amount"] = amount
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	// In mock mode the gateway approves without calling the provider.
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[checkout][usecase] payment gateway failed thread_id=%s mock=%t err=%v", threadID, mockMode, err)
		return entities.QuotePayment{}, mapGatewayError(err)
	}
	log.Printf("[checkout][usecase] payment gateway success thread_id=%s provider_payment_id=%s provider_status=%s", threadID, providerPaymentID, providerStatus)

	if len(providerResp) > 0 && !json.Valid(providerResp) {
		log.Printf("[checkout][usecase] provider response is not json thread_id=%s", threadID)
		providerResp = nil
	}
	p := entities.QuotePayment{
		ID:                 providerPaymentID,
		ThreadID:           threadID,
		VersionID:          version.ID,
		Amount:             amount,
		Status:             paymentStatus(providerStatus),
		Date:               time.Now().UTC(),
		ProviderPayloadRaw: providerResp,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[checkout][usecase] payment repository create failed thread_id=%s payment_id=%s err=%v", threadID, p.ID, err)
		return entities.QuotePayment{}, err
	}
	log.Printf("[checkout][usecase] pay-deposit success thread_id=%s payment_id=%s status=%s", threadID, created.ID, created.Status)
	return created, nil
}

func (u *QuoteCheckoutUseCase) ListPayments(ctx context.Context, threadID string) ([]entities.QuotePayment, error) {
	threadID = strings.TrimSpace(threadID)
	if threadID == "" {
		return nil, ErrInvalidThreadID
	}
	return u.repo.ListByThreadID(ctx, threadID)
}

func paymentStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRejected
	default:
		return entities.PaymentStatusPending
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and, in sandbox, a test payer email.
func ensurePayerDefaults(m map[string]any) {
	if v, ok := m["payer"]; !ok || v == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		payer["email"] = email
	} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayerFromUserID swaps the configured sandbox user id for its
// email, which is what the sandbox accepts.
func normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return
	}
	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != configuredUserID {
		return
	}
	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[checkout][usecase] mapped sandbox payer user_id to payer.email")
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func gatewayErrorContains(err error, needles ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	return gatewayErrorContains(err, `"error":"bad_request"`, `"status":400`)
}

func isGatewayUnauthorized(err error) bool {
	return gatewayErrorContains(err, `"error":"unauthorized"`, `"status":401`)
}

func isGatewayInvalidUsers(err error) bool {
	return gatewayErrorContains(err, "invalid users involved", `"code":2034`)
}

func isGatewayCustomerNotFound(err error) bool {
	return gatewayErrorContains(err, "customer not found", `"code":2002`)
}
