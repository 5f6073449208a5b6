package response

import (
	"clictopay_gateway/internal/domain/entities"
	"clictopay_gateway/pkg/clictopay"
)

// OrderResponse is returned by register and pre-authorize.
type OrderResponse struct {
	Environment string `json:"environment" example:"test"`
	OrderID     string `json:"orderId" example:"70906e55-7114-41d6-8332-4609dc6590f4"`
	FormURL     string `json:"formUrl" example:"https://test.clictopay.com/payment/merchants/CLICTOPAY/payment_fr.html?mdOrder=70906e55-7114-41d6-8332-4609dc6590f4"`
}

func FromURLResponse(env entities.Environment, r *clictopay.URLResponse) OrderResponse {
	return OrderResponse{Environment: env.String(), OrderID: r.OrderID, FormURL: r.FormURL}
}

// OperationResponse is returned by deposit, cancel and refund.
type OperationResponse struct {
	Environment  string `json:"environment" example:"test"`
	Operation    string `json:"operation" example:"deposit"`
	Success      bool   `json:"success" example:"true"`
	ErrorCode    int    `json:"errorCode" example:"0"`
	ErrorMessage string `json:"errorMessage,omitempty" example:"Success"`
}

func FromResponse(env entities.Environment, op entities.PaymentOperation, r *clictopay.Response) OperationResponse {
	res := OperationResponse{
		Environment:  env.String(),
		Operation:    string(op),
		Success:      r.IsOk(),
		ErrorMessage: r.ErrorMessage,
	}
	if r.ErrorCode != nil {
		res.ErrorCode = *r.ErrorCode
	}
	return res
}

// StatusResponse wraps getOrderStatus with a readable status.
type StatusResponse struct {
	Environment string                    `json:"environment" example:"test"`
	Status      string                    `json:"status,omitempty" example:"deposited"`
	Paid        bool                      `json:"paid"`
	Order       *clictopay.StatusResponse `json:"order"`
}

func FromStatusResponse(env entities.Environment, r *clictopay.StatusResponse) StatusResponse {
	res := StatusResponse{Environment: env.String(), Order: r}
	if status, ok := r.Status(); ok {
		res.Status = status.String()
		res.Paid = status.IsPaid()
	}
	return res
}

type ExtendedStatusResponse struct {
	Environment string                            `json:"environment" example:"test"`
	Status      string                            `json:"status,omitempty" example:"deposited"`
	Paid        bool                              `json:"paid"`
	Order       *clictopay.ExtendedStatusResponse `json:"order"`
}

func FromExtendedStatusResponse(env entities.Environment, r *clictopay.ExtendedStatusResponse) ExtendedStatusResponse {
	res := ExtendedStatusResponse{Environment: env.String(), Order: r}
	if status, ok := r.Status(); ok {
		res.Status = status.String()
		res.Paid = status.IsPaid()
	}
	return res
}

type InfoResponse struct {
	Mode         string   `json:"mode" example:"test"`
	Environments []string `json:"environments" example:"test,live"`
}

func FromEnvironments(mode entities.Environment, configured []entities.Environment) InfoResponse {
	envs := make([]string, 0, len(configured))
	for _, env := range configured {
		envs = append(envs, env.String())
	}
	return InfoResponse{Mode: mode.String(), Environments: envs}
}

type PingResponse struct {
	Message string `json:"message" example:"pong"`
}
