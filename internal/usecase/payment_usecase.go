package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"clictopay_gateway/internal/domain/entities"
	"clictopay_gateway/internal/usecase/interfaces"
	"clictopay_gateway/pkg/clictopay"

	"go.uber.org/zap"
)

var (
	ErrEnvironmentNotConfigured = errors.New("payment gateway not configured for environment")
	ErrInvalidEnvironment       = entities.ErrInvalidEnvironment
)

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_payment_usecase.go -package=mocks

// IPaymentUseCase forwards merchant calls to the gateway of the requested environment.
//
// Inputs are loosely typed field maps (decoded JSON bodies or query strings); they are
// turned into validated gateway requests before anything is sent.
type IPaymentUseCase interface {
	Register(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.URLResponse, error)
	PreAuthorize(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.URLResponse, error)
	Deposit(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.Response, error)
	Cancel(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.Response, error)
	Refund(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.Response, error)
	Status(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.StatusResponse, error)
	ExtendedStatus(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.ExtendedStatusResponse, error)
	Environments() []entities.Environment
}

type PaymentUseCase struct {
	gateways map[entities.Environment]interfaces.IPaymentGateway
	logger   *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateways map[entities.Environment]interfaces.IPaymentGateway, logger *zap.Logger) *PaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentUseCase{gateways: gateways, logger: logger}
}

func (u *PaymentUseCase) Register(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.URLResponse, error) {
	return execute(ctx, u, env, entities.OperationRegister, input, clictopay.NewRegister, interfaces.IPaymentGateway.Register)
}

func (u *PaymentUseCase) PreAuthorize(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.URLResponse, error) {
	return execute(ctx, u, env, entities.OperationPreAuthorize, input, clictopay.NewPreAuthorize, interfaces.IPaymentGateway.PreAuthorize)
}

func (u *PaymentUseCase) Deposit(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.Response, error) {
	return execute(ctx, u, env, entities.OperationDeposit, input, clictopay.NewDeposit, interfaces.IPaymentGateway.Deposit)
}

func (u *PaymentUseCase) Cancel(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.Response, error) {
	return execute(ctx, u, env, entities.OperationCancel, input, clictopay.NewCancel, interfaces.IPaymentGateway.Cancel)
}

func (u *PaymentUseCase) Refund(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.Response, error) {
	return execute(ctx, u, env, entities.OperationRefund, input, clictopay.NewRefund, interfaces.IPaymentGateway.Refund)
}

func (u *PaymentUseCase) Status(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.StatusResponse, error) {
	return execute(ctx, u, env, entities.OperationStatus, input, clictopay.NewStatus, interfaces.IPaymentGateway.Status)
}

func (u *PaymentUseCase) ExtendedStatus(ctx context.Context, env entities.Environment, input map[string]any) (*clictopay.ExtendedStatusResponse, error) {
	return execute(ctx, u, env, entities.OperationExtendedStatus, input, clictopay.NewExtendedStatus, interfaces.IPaymentGateway.ExtendedStatus)
}

// Environments lists the environments that have a gateway, sorted.
func (u *PaymentUseCase) Environments() []entities.Environment {
	envs := make([]entities.Environment, 0, len(u.gateways))
	for env, gw := range u.gateways {
		if gw != nil {
			envs = append(envs, env)
		}
	}
	sort.Slice(envs, func(i, j int) bool { return envs[i] < envs[j] })
	return envs
}

func (u *PaymentUseCase) gateway(env entities.Environment) (interfaces.IPaymentGateway, error) {
	if !env.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEnvironment, env)
	}
	gw, ok := u.gateways[env]
	if !ok || gw == nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvironmentNotConfigured, env)
	}
	return gw, nil
}

func execute[Req any, Resp any](
	ctx context.Context,
	u *PaymentUseCase,
	env entities.Environment,
	op entities.PaymentOperation,
	input map[string]any,
	build func(map[string]any) (Req, error),
	call func(interfaces.IPaymentGateway, context.Context, Req) (Resp, error),
) (Resp, error) {
	var zero Resp
	logger := u.logger.With(zap.String("operation", string(op)), zap.String("environment", env.String()))
	logger.Info("[payment][usecase] start", zap.Int("input_fields", len(input)))

	gw, err := u.gateway(env)
	if err != nil {
		logger.Warn("[payment][usecase] gateway unavailable", zap.Error(err))
		return zero, err
	}

	req, err := build(input)
	if err != nil {
		logger.Warn("[payment][usecase] invalid request", zap.Error(err))
		return zero, err
	}

	resp, err := call(gw, ctx, req)
	if err != nil {
		var gwErr *clictopay.Error
		if errors.As(err, &gwErr) {
			logger.Warn("[payment][usecase] gateway call failed", zap.Int("error_code", gwErr.Code), zap.Error(err))
		} else {
			logger.Warn("[payment][usecase] gateway call failed", zap.Error(err))
		}
		return zero, err
	}
	logger.Info("[payment][usecase] success")
	return resp, nil
}
