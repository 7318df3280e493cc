package routes

import (
	"net/http"

	"capquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathThreads = "/threads"
	PathPing    = "/ping"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addThreadRoutes(rg *gin.RouterGroup, threadHandler *handlers.QuoteThreadHandler, checkoutHandler *handlers.QuoteCheckoutHandler) {
	threads := rg.Group(PathThreads)
	{
		threads.GET("/:thread_id", threadHandler.GetThread)
		threads.DELETE("/:thread_id", threadHandler.ResetThread)
		threads.POST("/:thread_id/responses", threadHandler.IngestResponse)
		threads.PATCH("/:thread_id/versions/:version_id/select", threadHandler.SelectVersion)
		threads.POST("/:thread_id/handoffs", threadHandler.RecordHandoff)
		threads.POST("/:thread_id/pricing/validate", threadHandler.ValidatePricing)

		threads.POST("/:thread_id/payments", checkoutHandler.PayDeposit)
		threads.GET("/:thread_id/payments", checkoutHandler.ListPayments)
	}
}
