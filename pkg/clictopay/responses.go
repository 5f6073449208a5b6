package clictopay

import (
	"github.com/mitchellh/mapstructure"
)

// Response holds the fields every gateway answer may carry.
//
// Extra keeps the payload keys that have no dedicated field, untyped.
type Response struct {
	ErrorMessage string         `mapstructure:"errorMessage" json:"errorMessage,omitempty"`
	ErrorCode    *int           `mapstructure:"errorCode" json:"errorCode,omitempty"`
	Extra        map[string]any `mapstructure:",remain" json:"extra,omitempty"`
}

// IsOk is true when the gateway returned no error code or a zero one.
func (r *Response) IsOk() bool {
	return r.ErrorCode == nil || *r.ErrorCode == 0
}

func (r *Response) base() *Response {
	return r
}

func (r *Response) err() *Error {
	code := 0
	if r.ErrorCode != nil {
		code = *r.ErrorCode
	}
	return newGatewayError(r.ErrorMessage, code)
}

// URLResponse is returned by register.do and registerPreAuth.do.
type URLResponse struct {
	Response `mapstructure:",squash"`

	OrderID string `mapstructure:"orderId" json:"orderId,omitempty"`
	FormURL string `mapstructure:"formUrl" json:"formUrl,omitempty"`
}

// StatusResponse is returned by getOrderStatus.do. The gateway capitalizes a few keys.
type StatusResponse struct {
	Response `mapstructure:",squash"`

	OrderStatus    *OrderStatus `mapstructure:"OrderStatus" json:"OrderStatus,omitempty"`
	OrderNumber    string       `mapstructure:"OrderNumber" json:"OrderNumber,omitempty"`
	Pan            string       `mapstructure:"Pan" json:"Pan,omitempty"`
	Expiration     string       `mapstructure:"expiration" json:"expiration,omitempty"`
	CardholderName string       `mapstructure:"cardholderName" json:"cardholderName,omitempty"`
	Amount         *int64       `mapstructure:"amount" json:"amount,omitempty"`
	Currency       string       `mapstructure:"currency" json:"currency,omitempty"`
	DepositAmount  *int64       `mapstructure:"depositAmount" json:"depositAmount,omitempty"`
	ApprovalCode   string       `mapstructure:"approvalCode" json:"approvalCode,omitempty"`
	AuthCode       *int         `mapstructure:"authCode" json:"authCode,omitempty"`
	IP             string       `mapstructure:"ip" json:"ip,omitempty"`
	ClientID       string       `mapstructure:"clientId" json:"clientId,omitempty"`
	BindingID      string       `mapstructure:"bindingId" json:"bindingId,omitempty"`
}

// Status returns the order status, or false when the gateway did not send one.
func (r *StatusResponse) Status() (OrderStatus, bool) {
	if r.OrderStatus == nil {
		return 0, false
	}
	return *r.OrderStatus, true
}

// Attribute is one entry of the name/value lists of getOrderStatusExtended.do.
type Attribute struct {
	Name  string `mapstructure:"name" json:"name"`
	Value string `mapstructure:"value" json:"value"`
}

// ExtendedStatusResponse is returned by getOrderStatusExtended.do.
// Card, bank and payer blocks are kept as untyped maps.
type ExtendedStatusResponse struct {
	Response `mapstructure:",squash"`

	OrderNumber           string         `mapstructure:"orderNumber" json:"orderNumber,omitempty"`
	OrderStatus           *OrderStatus   `mapstructure:"orderStatus" json:"orderStatus,omitempty"`
	ActionCode            *int           `mapstructure:"actionCode" json:"actionCode,omitempty"`
	ActionCodeDescription string         `mapstructure:"actionCodeDescription" json:"actionCodeDescription,omitempty"`
	OriginalActionCode    string         `mapstructure:"originalActionCode" json:"originalActionCode,omitempty"`
	Amount                *int64         `mapstructure:"amount" json:"amount,omitempty"`
	Currency              string         `mapstructure:"currency" json:"currency,omitempty"`
	Date                  *int64         `mapstructure:"date" json:"date,omitempty"`
	DepositedDate         *int64         `mapstructure:"depositedDate" json:"depositedDate,omitempty"`
	OrderDescription      string         `mapstructure:"orderDescription" json:"orderDescription,omitempty"`
	IP                    string         `mapstructure:"ip" json:"ip,omitempty"`
	MerchantOrderParams   []Attribute    `mapstructure:"merchantOrderParams" json:"merchantOrderParams,omitempty"`
	TransactionAttributes []Attribute    `mapstructure:"transactionAttributes" json:"transactionAttributes,omitempty"`
	Attributes            []Attribute    `mapstructure:"attributes" json:"attributes,omitempty"`
	CardAuthInfo          map[string]any `mapstructure:"cardAuthInfo" json:"cardAuthInfo,omitempty"`
	AuthDateTime          *int64         `mapstructure:"authDateTime" json:"authDateTime,omitempty"`
	TerminalID            string         `mapstructure:"terminalId" json:"terminalId,omitempty"`
	AuthRefNum            string         `mapstructure:"authRefNum" json:"authRefNum,omitempty"`
	PaymentAmountInfo     map[string]any `mapstructure:"paymentAmountInfo" json:"paymentAmountInfo,omitempty"`
	BankInfo              map[string]any `mapstructure:"bankInfo" json:"bankInfo,omitempty"`
	PayerData             map[string]any `mapstructure:"payerData" json:"payerData,omitempty"`
	Chargeback            *bool          `mapstructure:"chargeback" json:"chargeback,omitempty"`
	PaymentWay            string         `mapstructure:"paymentWay" json:"paymentWay,omitempty"`
}

func (r *ExtendedStatusResponse) Status() (OrderStatus, bool) {
	if r.OrderStatus == nil {
		return 0, false
	}
	return *r.OrderStatus, true
}

type result interface {
	IsOk() bool
	base() *Response
}

// NewResponse builds the base response from a decoded gateway payload.
// It fails with an *Error when the payload reports a gateway error.
func NewResponse(payload map[string]any) (*Response, error) {
	r := &Response{}
	if err := decodeResponse(payload, r); err != nil {
		return nil, err
	}
	return r, nil
}

func NewURLResponse(payload map[string]any) (*URLResponse, error) {
	r := &URLResponse{}
	if err := decodeResponse(payload, r); err != nil {
		return nil, err
	}
	return r, nil
}

func NewStatusResponse(payload map[string]any) (*StatusResponse, error) {
	r := &StatusResponse{}
	if err := decodeResponse(payload, r); err != nil {
		return nil, err
	}
	return r, nil
}

func NewExtendedStatusResponse(payload map[string]any) (*ExtendedStatusResponse, error) {
	r := &ExtendedStatusResponse{}
	if err := decodeResponse(payload, r); err != nil {
		return nil, err
	}
	return r, nil
}

func decodeResponse(payload map[string]any, out result) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(payload); err != nil {
		return newCommunicationError(err)
	}
	if !out.IsOk() {
		return out.base().err()
	}
	return nil
}
