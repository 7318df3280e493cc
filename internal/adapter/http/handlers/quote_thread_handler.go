package handlers

import (
	"errors"
	"log"
	"net/http"

	request "capquote/internal/adapter/http/dto/request"
	response "capquote/internal/adapter/http/dto/response"
	"capquote/internal/orderstate"
	"capquote/internal/usecase"
	"capquote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidIngestPayload  = pkg.NewDomainErrorSimple("INVALID_AGENT_RESPONSE", "Invalid agent response payload", http.StatusBadRequest)
	errInvalidHandoffPayload = pkg.NewDomainErrorSimple("INVALID_HANDOFF", "Invalid handoff payload", http.StatusBadRequest)
	errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_CHECK", "Invalid pricing validation payload", http.StatusBadRequest)
)

// QuoteThreadHandler handles HTTP requests for configuration threads.
type QuoteThreadHandler struct {
	usecase usecase.IQuoteThreadUseCase
}

func NewQuoteThreadHandler(uc usecase.IQuoteThreadUseCase) *QuoteThreadHandler {
	return &QuoteThreadHandler{usecase: uc}
}

// GetThread godoc
// @Summary      Get a configuration thread
// @Tags         threads
// @Produce      json
// @Param        thread_id  path  string  true  "Thread ID"
// @Success      200  {object}  response.ThreadResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /threads/{thread_id} [get]
func (h *QuoteThreadHandler) GetThread(c *gin.Context) {
	threadID := c.Param("thread_id")
	t, err := h.usecase.Get(c.Request.Context(), threadID)
	if err != nil {
		writeThreadError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromThread(t))
}

// IngestResponse godoc
// @Summary      Ingest one agent response
// @Description  Extracts, normalizes and reconciles the response into the thread's specification.
// @Tags         threads
// @Accept       json
// @Produce      json
// @Param        thread_id  path  string                          true  "Thread ID"
// @Param        body       body  request.IngestResponseRequest   true  "Agent response"
// @Success      200  {object}  response.IngestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /threads/{thread_id}/responses [post]
func (h *QuoteThreadHandler) IngestResponse(c *gin.Context) {
	threadID := c.Param("thread_id")
	var payload request.IngestResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[thread][handler] ingest bind failed thread_id=%s err=%v", threadID, err)
		c.JSON(errInvalidIngestPayload.HTTPStatus, errInvalidIngestPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidIngestPayload.HTTPStatus, errInvalidIngestPayload.ToHTTPError())
		return
	}

	out, err := h.usecase.Ingest(c.Request.Context(), threadID, payload.Text, payload.StructuredSpecification)
	if err != nil {
		writeThreadError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromIngestOutcome(out))
}

// SelectVersion godoc
// @Summary      Select a quote version
// @Tags         threads
// @Produce      json
// @Param        thread_id   path  string  true  "Thread ID"
// @Param        version_id  path  string  true  "Version ID"
// @Success      200  {object}  response.ThreadResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /threads/{thread_id}/versions/{version_id}/select [patch]
func (h *QuoteThreadHandler) SelectVersion(c *gin.Context) {
	t, err := h.usecase.SelectVersion(c.Request.Context(), c.Param("thread_id"), c.Param("version_id"))
	if err != nil {
		writeThreadError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromThread(t))
}

// ResetThread godoc
// @Summary      Start the configuration over
// @Tags         threads
// @Produce      json
// @Param        thread_id  path  string  true  "Thread ID"
// @Success      200  {object}  response.ThreadResponse
// @Router       /threads/{thread_id} [delete]
func (h *QuoteThreadHandler) ResetThread(c *gin.Context) {
	t, err := h.usecase.Reset(c.Request.Context(), c.Param("thread_id"))
	if err != nil {
		writeThreadError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromThread(t))
}

// RecordHandoff godoc
// @Summary      Record an agent handoff
// @Tags         threads
// @Accept       json
// @Produce      json
// @Param        thread_id  path  string                   true  "Thread ID"
// @Param        body       body  request.HandoffRequest   true  "Handoff"
// @Success      201  {object}  entities.HandoffRecord
// @Failure      400  {object}  pkg.HTTPError
// @Router       /threads/{thread_id}/handoffs [post]
func (h *QuoteThreadHandler) RecordHandoff(c *gin.Context) {
	var payload request.HandoffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHandoffPayload.HTTPStatus, errInvalidHandoffPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.RecordHandoff(c.Request.Context(), c.Param("thread_id"), payload.ToEntity())
	if err != nil {
		writeThreadError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// ValidatePricing godoc
// @Summary      Cross-check the quoted logo cost against the logo analysis
// @Tags         threads
// @Accept       json
// @Produce      json
// @Param        thread_id  path  string                           true  "Thread ID"
// @Param        body       body  request.ValidatePricingRequest   true  "Quantity and quoted cost"
// @Success      200  {object}  entities.ConsistencyCheckResult
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /threads/{thread_id}/pricing/validate [post]
func (h *QuoteThreadHandler) ValidatePricing(c *gin.Context) {
	var payload request.ValidatePricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.ValidatePricing(c.Request.Context(), c.Param("thread_id"), payload.Quantity, payload.QuoteCost)
	if err != nil {
		writeThreadError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func writeThreadError(c *gin.Context, err error) {
	appErr := mapThreadError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[thread][handler] request failed path=%s err=%v", c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapThreadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidThreadID), errors.Is(err, usecase.ErrInvalidVersionID), errors.Is(err, orderstate.ErrInvalidQuantity),
		errors.Is(err, orderstate.ErrInvalidQuoteCost):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyResponse):
		return errInvalidIngestPayload
	case errors.Is(err, usecase.ErrThreadNotFound):
		return pkg.NewDomainErrorSimple("THREAD_NOT_FOUND", "Configuration thread not found", http.StatusNotFound)
	case errors.Is(err, orderstate.ErrVersionNotFound):
		return pkg.NewDomainErrorSimple("VERSION_NOT_FOUND", "Quote version not found in this thread", http.StatusNotFound)
	case errors.Is(err, usecase.ErrThreadConflict):
		return pkg.NewDomainErrorSimple("THREAD_CONFLICT", "Thread was modified concurrently, retry the request", http.StatusConflict)
	case errors.Is(err, orderstate.ErrLogoAnalysisUnavailable):
		return pkg.NewDomainErrorSimple("LOGO_ANALYSIS_UNAVAILABLE", "No logo analysis has been handed off for this thread", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
