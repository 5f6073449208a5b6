package routes

import (
	"clictopay_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathInfo     = "/info"
	PathPing     = "/ping"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/register", paymentHandler.Register)
		payments.POST("/pre-authorize", paymentHandler.PreAuthorize)
		payments.POST("/deposit", paymentHandler.Deposit)
		payments.POST("/cancel", paymentHandler.Cancel)
		payments.POST("/refund", paymentHandler.Refund)
		payments.GET("/status", paymentHandler.Status)
		payments.GET("/extended-status", paymentHandler.ExtendedStatus)
	}
}

func addInfoRoutes(rg *gin.RouterGroup, infoHandler *handlers.InfoHandler) {
	rg.GET(PathInfo, infoHandler.Info)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}
