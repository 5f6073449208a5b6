package payments

import (
	"context"

	"clictopay_gateway/internal/domain/entities"
	"clictopay_gateway/internal/usecase/interfaces"
	"clictopay_gateway/pkg/clictopay"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const mockFormURL = "https://test.clictopay.com/payment/merchants/CLICTOPAY/payment_fr.html?mdOrder="

// MockGateway answers every valid call with a successful synthetic response and never
// leaves the process.
type MockGateway struct {
	env    entities.Environment
	logger *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway(env entities.Environment, logger *zap.Logger) *MockGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MockGateway{env: env, logger: logger.With(zap.String("environment", env.String()), zap.Bool("mock", true))}
}

func (g *MockGateway) Register(_ context.Context, req clictopay.Register) (*clictopay.URLResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return g.urlResponse("register", req.OrderNumber), nil
}

func (g *MockGateway) PreAuthorize(_ context.Context, req clictopay.PreAuthorize) (*clictopay.URLResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return g.urlResponse("pre_authorize", req.OrderNumber), nil
}

func (g *MockGateway) Deposit(_ context.Context, req clictopay.Deposit) (*clictopay.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	g.logger.Info("[payment][gateway] mock deposit success", zap.String("order_id", req.OrderID))
	return okResponse(), nil
}

func (g *MockGateway) Cancel(_ context.Context, req clictopay.Cancel) (*clictopay.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	g.logger.Info("[payment][gateway] mock cancel success", zap.String("order_id", req.OrderID))
	return okResponse(), nil
}

func (g *MockGateway) Refund(_ context.Context, req clictopay.Refund) (*clictopay.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	g.logger.Info("[payment][gateway] mock refund success", zap.String("order_id", req.OrderID))
	return okResponse(), nil
}

func (g *MockGateway) Status(_ context.Context, req clictopay.Status) (*clictopay.StatusResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	status := clictopay.OrderStatusDeposited
	return &clictopay.StatusResponse{
		Response:    *okResponse(),
		OrderStatus: &status,
		Pan:         "411111**1111",
	}, nil
}

func (g *MockGateway) ExtendedStatus(_ context.Context, req clictopay.ExtendedStatus) (*clictopay.ExtendedStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	status := clictopay.OrderStatusDeposited
	return &clictopay.ExtendedStatusResponse{
		Response:              *okResponse(),
		OrderNumber:           req.OrderNumber,
		OrderStatus:           &status,
		ActionCode:            clictopay.Int(0),
		ActionCodeDescription: "Request processed successfully",
		Attributes:            []clictopay.Attribute{{Name: "mdOrder", Value: req.OrderID}},
	}, nil
}

func (g *MockGateway) urlResponse(operation, orderNumber string) *clictopay.URLResponse {
	id := uuid.NewString()
	g.logger.Info("[payment][gateway] mock order registered",
		zap.String("operation", operation),
		zap.String("order_number", orderNumber),
		zap.String("order_id", id),
	)
	return &clictopay.URLResponse{
		Response: *okResponse(),
		OrderID:  id,
		FormURL:  mockFormURL + id,
	}
}

func okResponse() *clictopay.Response {
	return &clictopay.Response{ErrorCode: clictopay.Int(0), ErrorMessage: "Success"}
}
