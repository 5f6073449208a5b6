package payments

import (
	"errors"
	"net/http"
	"time"

	"clictopay_gateway/internal/config"
	"clictopay_gateway/internal/domain/entities"
	"clictopay_gateway/internal/usecase/interfaces"
	"clictopay_gateway/pkg/clictopay"

	"go.uber.org/zap"
)

var ErrMissingClicToPayCredentials = errors.New("missing clictopay credentials")

// NewClicToPayGateway builds the gateway of one environment.
// An empty endpoint in creds selects the platform of env.
func NewClicToPayGateway(env entities.Environment, creds config.Credentials, timeout time.Duration, logger *zap.Logger) (*clictopay.Gateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("environment", env.String()))

	if !creds.IsSet() {
		logger.Warn("[payment][gateway] missing credentials")
		return nil, ErrMissingClicToPayCredentials
	}

	opts := []clictopay.Option{clictopay.WithLogger(logger)}
	if timeout > 0 {
		opts = append(opts, clictopay.WithHTTPClient(&http.Client{Timeout: timeout}))
	}

	var gw *clictopay.Gateway
	if creds.Endpoint != "" {
		gw = clictopay.New(creds.Login, creds.Password, creds.Endpoint, opts...)
	} else {
		gw = clictopay.NewForMode(creds.Login, creds.Password, env.IsTest(), opts...)
	}
	logger.Info("[payment][gateway] ClicToPay client initialized",
		zap.String("login", gw.Login()),
		zap.String("endpoint", gw.Endpoint()),
	)
	return gw, nil
}

// NewGateways returns one gateway per usable environment. In mock mode every environment
// gets a MockGateway; otherwise environments without credentials are left out.
func NewGateways(cfg config.Config, logger *zap.Logger) map[entities.Environment]interfaces.IPaymentGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	gateways := make(map[entities.Environment]interfaces.IPaymentGateway, 2)
	timeout := time.Duration(cfg.ClicToPay.TimeoutSeconds) * time.Second

	for _, env := range []entities.Environment{entities.EnvironmentTest, entities.EnvironmentLive} {
		if cfg.PaymentGatewayMock {
			logger.Info("[payment][gateway] mock mode enabled", zap.String("environment", env.String()))
			gateways[env] = NewMockGateway(env, logger)
			continue
		}

		gw, err := NewClicToPayGateway(env, cfg.ClicToPay.For(env), timeout, logger)
		if err != nil {
			logger.Warn("[payment][gateway] environment not configured", zap.String("environment", env.String()), zap.Error(err))
			continue
		}
		gateways[env] = gw
	}
	return gateways
}
