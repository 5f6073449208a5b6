package interfaces

import (
	"context"

	"clictopay_gateway/pkg/clictopay"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway.go -package=mocks

// IPaymentGateway abstracts the ClicToPay merchant API.
//
// *clictopay.Gateway implements it for real calls; the payments package also provides an
// in-process mock used when the gateway mock mode is enabled.
type IPaymentGateway interface {
	Register(ctx context.Context, req clictopay.Register) (*clictopay.URLResponse, error)
	PreAuthorize(ctx context.Context, req clictopay.PreAuthorize) (*clictopay.URLResponse, error)
	Deposit(ctx context.Context, req clictopay.Deposit) (*clictopay.Response, error)
	Cancel(ctx context.Context, req clictopay.Cancel) (*clictopay.Response, error)
	Refund(ctx context.Context, req clictopay.Refund) (*clictopay.Response, error)
	Status(ctx context.Context, req clictopay.Status) (*clictopay.StatusResponse, error)
	ExtendedStatus(ctx context.Context, req clictopay.ExtendedStatus) (*clictopay.ExtendedStatusResponse, error)
}

var _ IPaymentGateway = (*clictopay.Gateway)(nil)
