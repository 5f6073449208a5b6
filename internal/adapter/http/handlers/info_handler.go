package handlers

import (
	"net/http"

	"clictopay_gateway/internal/adapter/http/dto/response"
	"clictopay_gateway/internal/adapter/http/middleware"
	"clictopay_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

type InfoHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewInfoHandler(uc usecase.IPaymentUseCase) *InfoHandler {
	return &InfoHandler{usecase: uc}
}

// Info godoc
// @Summary      Current environment
// @Description  Returns the environment resolved for this request and the configured ones.
// @Tags         info
// @Produce      json
// @Param        X-Environment  header  string  false  "test or live"
// @Success      200  {object}  response.InfoResponse
// @Router       /info [get]
func (h *InfoHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromEnvironments(middleware.GetEnvironment(c), h.usecase.Environments()))
}

// Ping godoc
// @Summary  Health check
// @Tags     info
// @Produce  json
// @Success  200  {object}  response.PingResponse
// @Router   /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.PingResponse{Message: "pong"})
}
