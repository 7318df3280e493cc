package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "capquote/internal/adapter/http/dto/request"
	response "capquote/internal/adapter/http/dto/response"
	"capquote/internal/usecase"
	"capquote/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteCheckoutHandler handles the deposit payment of a selected quote version.
type QuoteCheckoutHandler struct {
	usecase usecase.IQuoteCheckoutUseCase
}

func NewQuoteCheckoutHandler(uc usecase.IQuoteCheckoutUseCase) *QuoteCheckoutHandler {
	return &QuoteCheckoutHandler{usecase: uc}
}

// PayDeposit godoc
// @Summary      Pay the deposit of the selected quote version
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        thread_id  path  string                      true  "Thread ID"
// @Param        body       body  request.PayDepositRequest   true  "Payment data"
// @Success      200  {object}  response.QuotePaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /threads/{thread_id}/payments [post]
func (h *QuoteCheckoutHandler) PayDeposit(c *gin.Context) {
	threadID := c.Param("thread_id")
	log.Printf("[checkout][handler] pay-deposit start thread_id=%s", threadID)

	mpPayload, err := readPaymentPayload(c)
	if err != nil {
		if isPaymentGatewayMockEnabled() {
			log.Printf("[checkout][handler] payload invalid in mock mode; fallback to empty payload thread_id=%s err=%v", threadID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[checkout][handler] invalid payload thread_id=%s err=%v", threadID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.PayDeposit(c.Request.Context(), threadID, mpPayload)
	if err != nil {
		log.Printf("[checkout][handler] pay-deposit failed thread_id=%s err=%v", threadID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] pay-deposit success thread_id=%s payment_id=%s status=%s", threadID, created.ID, created.Status)
	c.JSON(http.StatusOK, response.FromQuotePayment(created))
}

// ListPayments godoc
// @Summary      List the deposits of a thread, newest first
// @Tags         payments
// @Produce      json
// @Param        thread_id  path  string  true  "Thread ID"
// @Success      200  {array}   response.QuotePaymentResponse
// @Router       /threads/{thread_id}/payments [get]
func (h *QuoteCheckoutHandler) ListPayments(c *gin.Context) {
	threadID := c.Param("thread_id")
	payments, err := h.usecase.ListPayments(c.Request.Context(), threadID)
	if err != nil {
		log.Printf("[checkout][handler] list failed thread_id=%s err=%v", threadID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayments(payments))
}

func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.ParsePayDepositRequest(raw)
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidThreadID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrThreadNotFound):
		return pkg.NewDomainErrorSimple("THREAD_NOT_FOUND", "Configuration thread not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoSelectedVersion):
		return pkg.NewDomainErrorSimple("NO_SELECTED_VERSION", "Select a priced quote version before paying", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
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
