package clictopay

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Register asks the gateway to create an order and returns the payment page URL.
// Amount is expressed in millimes.
type Register struct {
	OrderNumber        string         `mapstructure:"orderNumber" json:"orderNumber" validate:"required"`
	Amount             *int64         `mapstructure:"amount" json:"amount" validate:"required,numeric,min=0"`
	ReturnURL          string         `mapstructure:"returnUrl" json:"returnUrl" validate:"required,url"`
	FailURL            string         `mapstructure:"failUrl,omitempty" json:"failUrl,omitempty" validate:"omitempty,url"`
	Description        string         `mapstructure:"description,omitempty" json:"description,omitempty"`
	ClientID           string         `mapstructure:"clientId,omitempty" json:"clientId,omitempty"`
	JSONParams         map[string]any `mapstructure:"jsonParams,omitempty" json:"jsonParams,omitempty"`
	SessionTimeoutSecs *int           `mapstructure:"sessionTimeoutSecs,omitempty" json:"sessionTimeoutSecs,omitempty" validate:"omitempty,min=0"`
	BindingID          string         `mapstructure:"bindingId,omitempty" json:"bindingId,omitempty"`
}

// PreAuthorize registers an order whose amount is only held until a Deposit.
type PreAuthorize Register

// Deposit captures a pre-authorized order.
type Deposit struct {
	OrderID string `mapstructure:"orderId" json:"orderId" validate:"required"`
	Amount  *int64 `mapstructure:"amount" json:"amount" validate:"required,numeric,min=0"`
}

// Cancel reverses an order that has not been deposited yet.
type Cancel struct {
	OrderID string `mapstructure:"orderId" json:"orderId" validate:"required"`
}

// Refund gives back part or all of a deposited amount.
type Refund struct {
	OrderID string `mapstructure:"orderId" json:"orderId" validate:"required"`
	Amount  *int64 `mapstructure:"amount" json:"amount" validate:"required,numeric,min=0"`
}

type Status struct {
	OrderID string `mapstructure:"orderId" json:"orderId" validate:"required"`
}

type ExtendedStatus struct {
	OrderID     string `mapstructure:"orderId" json:"orderId" validate:"required"`
	OrderNumber string `mapstructure:"orderNumber" json:"orderNumber" validate:"required"`
}

func (r Register) Validate() error       { return validateRequest(r) }
func (r PreAuthorize) Validate() error   { return validateRequest(r) }
func (r Deposit) Validate() error        { return validateRequest(r) }
func (r Cancel) Validate() error         { return validateRequest(r) }
func (r Refund) Validate() error         { return validateRequest(r) }
func (r Status) Validate() error         { return validateRequest(r) }
func (r ExtendedStatus) Validate() error { return validateRequest(r) }

// NewRegister builds a Register from loosely typed input such as a decoded JSON body.
func NewRegister(input map[string]any) (Register, error) {
	return decodeRequest[Register](input)
}

func NewPreAuthorize(input map[string]any) (PreAuthorize, error) {
	return decodeRequest[PreAuthorize](input)
}

func NewDeposit(input map[string]any) (Deposit, error) {
	return decodeRequest[Deposit](input)
}

func NewCancel(input map[string]any) (Cancel, error) {
	return decodeRequest[Cancel](input)
}

func NewRefund(input map[string]any) (Refund, error) {
	return decodeRequest[Refund](input)
}

func NewStatus(input map[string]any) (Status, error) {
	return decodeRequest[Status](input)
}

func NewExtendedStatus(input map[string]any) (ExtendedStatus, error) {
	return decodeRequest[ExtendedStatus](input)
}

// Int64 returns a pointer to v, for amount fields in struct literals.
func Int64(v int64) *int64 {
	return &v
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

func decodeRequest[T any](input map[string]any) (T, error) {
	var req, zero T
	name := reflect.TypeOf(req).Name()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &req,
		TagName:    "mapstructure",
		DecodeHook: mapstructure.DecodeHookFuncType(scalarHook),
	})
	if err != nil {
		return zero, err
	}
	if err := decoder.Decode(input); err != nil {
		return zero, &ValidationError{Request: name, Fields: typeErrors(reflect.TypeOf(req), input), cause: err}
	}
	if err := validateRequest(req); err != nil {
		return zero, err
	}
	return req, nil
}

// scalarHook accepts integral numbers and numeric strings for integer fields, and strings or
// numbers for string fields. Blank strings decode as absent. Anything else is rejected.
func scalarHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() == reflect.Ptr {
		to = to.Elem()
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s, ok := data.(string); ok && strings.TrimSpace(s) == "" {
			return nil, nil
		}
		return toInt64(data)
	case reflect.String:
		if s, ok := data.(string); ok {
			if strings.TrimSpace(s) == "" {
				return "", nil
			}
			return s, nil
		}
		return numberToString(data)
	default:
		return data, nil
	}
}

var (
	errNotInteger = errors.New("expected an integer")
	errNotString  = errors.New("expected a string or a number")
)

func toInt64(data any) (int64, error) {
	switch v := data.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case float32:
		return integralFloat(float64(v))
	case float64:
		return integralFloat(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, errNotInteger
		}
		return integralFloat(f)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, errNotInteger
		}
		return n, nil
	default:
		return 0, errNotInteger
	}
}

func integralFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) >= 1<<63 {
		return 0, errNotInteger
	}
	return int64(f), nil
}

func numberToString(data any) (string, error) {
	switch v := data.(type) {
	case json.Number:
		return v.String(), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToStringE(v)
	default:
		return "", errNotString
	}
}

// typeErrors names the fields of t whose input value scalarHook refuses.
func typeErrors(t reflect.Type, input map[string]any) []FieldError {
	var fields []FieldError
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		value, ok := input[key]
		if key == "" || !ok || value == nil {
			continue
		}
		if _, err := scalarHook(nil, f.Type, value); err != nil {
			rule := "type"
			if errors.Is(err, errNotInteger) {
				rule = "numeric"
			}
			fields = append(fields, FieldError{Field: key, Rule: rule})
		}
	}
	return fields
}

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	name := reflect.Indirect(reflect.ValueOf(req)).Type().Name()
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Request: name, cause: err}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return &ValidationError{Request: name, Fields: fields, cause: err}
}

// encodeParams flattens the present fields of a request into query parameters.
// Nested maps are sent as a JSON object string.
func encodeParams(req any) (url.Values, error) {
	fields := map[string]any{}
	if err := mapstructure.Decode(req, &fields); err != nil {
		return nil, err
	}

	params := url.Values{}
	for key, value := range fields {
		switch v := value.(type) {
		case map[string]any:
			raw, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("encode %s: %w", key, err)
			}
			params.Set(key, string(raw))
		default:
			s, err := cast.ToStringE(v)
			if err != nil {
				return nil, fmt.Errorf("encode %s: %w", key, err)
			}
			params.Set(key, s)
		}
	}
	return params, nil
}
