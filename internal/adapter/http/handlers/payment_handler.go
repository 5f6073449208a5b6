package handlers

import (
	"errors"
	"net/http"

	"clictopay_gateway/internal/adapter/http/dto/request"
	"clictopay_gateway/internal/adapter/http/dto/response"
	"clictopay_gateway/internal/adapter/http/middleware"
	"clictopay_gateway/internal/domain/entities"
	"clictopay_gateway/internal/usecase"
	"clictopay_gateway/pkg"
	"clictopay_gateway/pkg/clictopay"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the ClicToPay operations over HTTP.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	logger  *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, logger: logger}
}

// Register godoc
// @Summary      Register an order
// @Description  Creates an order on the gateway and returns the payment page URL.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Environment  header  string              false  "test or live"
// @Param        request        body    clictopay.Register  true   "Order to register"
// @Success      200  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/register [post]
func (h *PaymentHandler) Register(c *gin.Context) {
	env := middleware.GetEnvironment(c)
	input, ok := h.readBody(c, entities.OperationRegister)
	if !ok {
		return
	}

	resp, err := h.usecase.Register(c.Request.Context(), env, input)
	if err != nil {
		h.fail(c, entities.OperationRegister, err)
		return
	}
	c.JSON(http.StatusOK, response.FromURLResponse(env, resp))
}

// PreAuthorize godoc
// @Summary      Register a pre-authorized order
// @Description  Like register, but the amount is only held until a deposit.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Environment  header  string                  false  "test or live"
// @Param        request        body    clictopay.PreAuthorize  true   "Order to pre-authorize"
// @Success      200  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/pre-authorize [post]
func (h *PaymentHandler) PreAuthorize(c *gin.Context) {
	env := middleware.GetEnvironment(c)
	input, ok := h.readBody(c, entities.OperationPreAuthorize)
	if !ok {
		return
	}

	resp, err := h.usecase.PreAuthorize(c.Request.Context(), env, input)
	if err != nil {
		h.fail(c, entities.OperationPreAuthorize, err)
		return
	}
	c.JSON(http.StatusOK, response.FromURLResponse(env, resp))
}

// Deposit godoc
// @Summary      Capture a pre-authorized order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Environment  header  string             false  "test or live"
// @Param        request        body    clictopay.Deposit  true   "Order and amount"
// @Success      200  {object}  response.OperationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/deposit [post]
func (h *PaymentHandler) Deposit(c *gin.Context) {
	env := middleware.GetEnvironment(c)
	input, ok := h.readBody(c, entities.OperationDeposit)
	if !ok {
		return
	}

	resp, err := h.usecase.Deposit(c.Request.Context(), env, input)
	if err != nil {
		h.fail(c, entities.OperationDeposit, err)
		return
	}
	c.JSON(http.StatusOK, response.FromResponse(env, entities.OperationDeposit, resp))
}

// Cancel godoc
// @Summary      Reverse an order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Environment  header  string            false  "test or live"
// @Param        request        body    clictopay.Cancel  true   "Order to reverse"
// @Success      200  {object}  response.OperationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/cancel [post]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	env := middleware.GetEnvironment(c)
	input, ok := h.readBody(c, entities.OperationCancel)
	if !ok {
		return
	}

	resp, err := h.usecase.Cancel(c.Request.Context(), env, input)
	if err != nil {
		h.fail(c, entities.OperationCancel, err)
		return
	}
	c.JSON(http.StatusOK, response.FromResponse(env, entities.OperationCancel, resp))
}

// Refund godoc
// @Summary      Refund a deposited order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Environment  header  string            false  "test or live"
// @Param        request        body    clictopay.Refund  true   "Order and amount"
// @Success      200  {object}  response.OperationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	env := middleware.GetEnvironment(c)
	input, ok := h.readBody(c, entities.OperationRefund)
	if !ok {
		return
	}

	resp, err := h.usecase.Refund(c.Request.Context(), env, input)
	if err != nil {
		h.fail(c, entities.OperationRefund, err)
		return
	}
	c.JSON(http.StatusOK, response.FromResponse(env, entities.OperationRefund, resp))
}

// Status godoc
// @Summary      Order status
// @Tags         payments
// @Produce      json
// @Param        X-Environment  header  string  false  "test or live"
// @Param        orderId        query   string  true   "Gateway order id"
// @Success      200  {object}  response.StatusResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/status [get]
func (h *PaymentHandler) Status(c *gin.Context) {
	env := middleware.GetEnvironment(c)
	input := request.FromQuery(c.Request.URL.Query())

	resp, err := h.usecase.Status(c.Request.Context(), env, input)
	if err != nil {
		h.fail(c, entities.OperationStatus, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatusResponse(env, resp))
}

// ExtendedStatus godoc
// @Summary      Extended order status
// @Tags         payments
// @Produce      json
// @Param        X-Environment  header  string  false  "test or live"
// @Param        orderId        query   string  true   "Gateway order id"
// @Param        orderNumber    query   string  true   "Merchant order number"
// @Success      200  {object}  response.ExtendedStatusResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/extended-status [get]
func (h *PaymentHandler) ExtendedStatus(c *gin.Context) {
	env := middleware.GetEnvironment(c)
	input := request.FromQuery(c.Request.URL.Query())

	resp, err := h.usecase.ExtendedStatus(c.Request.Context(), env, input)
	if err != nil {
		h.fail(c, entities.OperationExtendedStatus, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExtendedStatusResponse(env, resp))
}

func (h *PaymentHandler) readBody(c *gin.Context, op entities.PaymentOperation) (map[string]any, bool) {
	raw, err := c.GetRawData()
	if err == nil {
		var input map[string]any
		if input, err = request.ParseJSONPayload(raw); err == nil {
			return input, true
		}
	}

	h.logger.Warn("[payment][handler] invalid payload",
		zap.String("operation", string(op)),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	)
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	return nil, false
}

func (h *PaymentHandler) fail(c *gin.Context, op entities.PaymentOperation, err error) {
	appErr := mapPaymentError(err)
	h.logger.Warn("[payment][handler] operation failed",
		zap.String("operation", string(op)),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Int("http_status", appErr.HTTPStatus),
		zap.Error(err),
	)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

type fieldErrorDetail struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func mapPaymentError(err error) *pkg.AppError {
	var verr *clictopay.ValidationError
	var gwErr *clictopay.Error

	switch {
	case errors.As(err, &verr):
		details := make([]fieldErrorDetail, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, fieldErrorDetail{Field: f.Field, Rule: f.Rule, Message: f.String()})
		}
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest).WithDetails(details)
	case errors.Is(err, usecase.ErrInvalidEnvironment):
		return pkg.NewDomainError("INVALID_ENVIRONMENT", "Invalid environment", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEnvironmentNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured for this environment", err, http.StatusServiceUnavailable)
	case errors.As(err, &gwErr) && gwErr.IsGatewayError():
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment gateway rejected the request", err, http.StatusUnprocessableEntity).
			WithDetails(map[string]any{"code": gwErr.Code, "message": gwErr.Message})
	case errors.As(err, &gwErr):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway unavailable", err, http.StatusBadGateway).
			WithDetails(map[string]any{"message": gwErr.Message})
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
