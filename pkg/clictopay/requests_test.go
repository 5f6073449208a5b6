package clictopay

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidationFailure(t *testing.T, err error, field, rule string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrValidation), "expected ErrValidation, got %v", err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, f := range verr.Fields {
		if f.Field == field && f.Rule == rule {
			return
		}
	}
	t.Fatalf("expected %s rule on %s, got %+v", rule, field, verr.Fields)
}

func TestNewRegister(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		_, err := NewRegister(map[string]any{"amount": 100, "returnUrl": "https://example.com"})
		requireValidationFailure(t, err, "orderNumber", "required")

		_, err = NewRegister(map[string]any{"orderNumber": "12345", "returnUrl": "https://example.com"})
		requireValidationFailure(t, err, "amount", "required")

		_, err = NewRegister(map[string]any{"orderNumber": "12345", "amount": 100})
		requireValidationFailure(t, err, "returnUrl", "required")
	})

	t.Run("failure returns the zero value", func(t *testing.T) {
		r, err := NewRegister(map[string]any{"orderNumber": "12345", "amount": 100})
		require.Error(t, err)
		assert.Equal(t, Register{}, r)
	})

	t.Run("creates successfully", func(t *testing.T) {
		r, err := NewRegister(map[string]any{
			"orderNumber": "12345",
			"amount":      100,
			"returnUrl":   "https://example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "12345", r.OrderNumber)
		require.NotNil(t, r.Amount)
		assert.Equal(t, int64(100), *r.Amount)
		assert.Equal(t, "https://example.com", r.ReturnURL)
		assert.Empty(t, r.FailURL)
		assert.Nil(t, r.SessionTimeoutSecs)
		assert.Nil(t, r.JSONParams)
	})

	t.Run("with optional fields", func(t *testing.T) {
		r, err := NewRegister(map[string]any{
			"orderNumber":        "12345",
			"amount":             100,
			"returnUrl":          "https://example.com",
			"failUrl":            "https://example.com/fail",
			"description":        "Test order",
			"clientId":           "client123",
			"jsonParams":         map[string]any{"email": "test@example.com"},
			"sessionTimeoutSecs": 1800,
			"bindingId":          "binding123",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/fail", r.FailURL)
		assert.Equal(t, "Test order", r.Description)
		assert.Equal(t, "client123", r.ClientID)
		assert.Equal(t, map[string]any{"email": "test@example.com"}, r.JSONParams)
		require.NotNil(t, r.SessionTimeoutSecs)
		assert.Equal(t, 1800, *r.SessionTimeoutSecs)
		assert.Equal(t, "binding123", r.BindingID)
	})

	t.Run("coerces loosely typed values", func(t *testing.T) {
		r, err := NewRegister(map[string]any{
			"orderNumber": 87654321,
			"amount":      "250",
			"returnUrl":   "https://example.com/finish.html",
		})
		require.NoError(t, err)
		assert.Equal(t, "87654321", r.OrderNumber)
		assert.Equal(t, int64(250), *r.Amount)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewRegister(map[string]any{"orderNumber": "1", "amount": -1, "returnUrl": "https://example.com"})
		requireValidationFailure(t, err, "amount", "min")
	})

	t.Run("rejects invalid urls", func(t *testing.T) {
		_, err := NewRegister(map[string]any{"orderNumber": "1", "amount": 1, "returnUrl": "not a url"})
		requireValidationFailure(t, err, "returnUrl", "url")

		_, err = NewRegister(map[string]any{"orderNumber": "1", "amount": 1, "returnUrl": "https://example.com", "failUrl": "nope"})
		requireValidationFailure(t, err, "failUrl", "url")
	})

	t.Run("rejects non numeric amount", func(t *testing.T) {
		r, err := NewRegister(map[string]any{"orderNumber": "1", "amount": "abc", "returnUrl": "https://example.com"})
		requireValidationFailure(t, err, "amount", "numeric")
		assert.Equal(t, Register{}, r)
	})

	t.Run("ignores reserved and unknown keys", func(t *testing.T) {
		r, err := NewRegister(map[string]any{
			"orderNumber": "1",
			"amount":      1,
			"returnUrl":   "https://example.com",
			"userName":    "someone-else",
			"currency":    978,
		})
		require.NoError(t, err)
		assert.Equal(t, "1", r.OrderNumber)
	})
}

func registerInput(key string, value any) map[string]any {
	input := map[string]any{
		"orderNumber": "87654321",
		"amount":      100,
		"returnUrl":   "https://example.com/finish.html",
	}
	input[key] = value
	return input
}

func TestNewRegister_StrictScalars(t *testing.T) {
	rejected := []struct {
		name  string
		key   string
		value any
		rule  string
	}{
		{name: "empty amount", key: "amount", value: "", rule: "required"},
		{name: "blank amount", key: "amount", value: " ", rule: "required"},
		{name: "boolean amount", key: "amount", value: true, rule: "numeric"},
		{name: "fractional amount", key: "amount", value: 100.9, rule: "numeric"},
		{name: "fractional amount string", key: "amount", value: "100.9", rule: "numeric"},
		{name: "fractional amount json number", key: "amount", value: json.Number("100.9"), rule: "numeric"},
		{name: "boolean session timeout", key: "sessionTimeoutSecs", value: true, rule: "numeric"},
		{name: "fractional session timeout", key: "sessionTimeoutSecs", value: 100.9, rule: "numeric"},
		{name: "empty order number", key: "orderNumber", value: "", rule: "required"},
		{name: "blank order number", key: "orderNumber", value: " ", rule: "required"},
		{name: "boolean order number", key: "orderNumber", value: true, rule: "type"},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegister(registerInput(tt.key, tt.value))
			requireValidationFailure(t, err, tt.key, tt.rule)
			assert.Equal(t, Register{}, r)
		})
	}

	t.Run("blank session timeout is absent", func(t *testing.T) {
		for _, value := range []any{"", " "} {
			r, err := NewRegister(registerInput("sessionTimeoutSecs", value))
			require.NoError(t, err)
			assert.Nil(t, r.SessionTimeoutSecs)
		}
	})

	t.Run("numeric order number", func(t *testing.T) {
		r, err := NewRegister(registerInput("orderNumber", 100.9))
		require.NoError(t, err)
		assert.Equal(t, "100.9", r.OrderNumber)

		r, err = NewRegister(registerInput("orderNumber", json.Number("87654321")))
		require.NoError(t, err)
		assert.Equal(t, "87654321", r.OrderNumber)
	})

	t.Run("integral amounts", func(t *testing.T) {
		accepted := map[string]any{
			"float":       float64(100),
			"json number": json.Number("100"),
			"string":      " 100 ",
			"int64":       int64(100),
		}
		for name, value := range accepted {
			r, err := NewRegister(registerInput("amount", value))
			require.NoError(t, err, name)
			assert.Equal(t, int64(100), *r.Amount, name)
		}
	})

	t.Run("large json number amount is exact", func(t *testing.T) {
		r, err := NewRegister(registerInput("amount", json.Number("9007199254740993")))
		require.NoError(t, err)
		assert.Equal(t, int64(9007199254740993), *r.Amount)
	})
}

func TestNewPreAuthorize(t *testing.T) {
	_, err := NewPreAuthorize(map[string]any{"amount": 100, "returnUrl": "https://example.com"})
	requireValidationFailure(t, err, "orderNumber", "required")

	r, err := NewPreAuthorize(map[string]any{"orderNumber": "87654321", "amount": 100, "returnUrl": "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "87654321", r.OrderNumber)
	assert.Equal(t, int64(100), *r.Amount)
}

func TestNewDeposit(t *testing.T) {
	_, err := NewDeposit(map[string]any{"amount": 100})
	requireValidationFailure(t, err, "orderId", "required")

	_, err = NewDeposit(map[string]any{"orderId": "order123"})
	requireValidationFailure(t, err, "amount", "required")

	_, err = NewDeposit(map[string]any{"orderId": "order123", "amount": ""})
	requireValidationFailure(t, err, "amount", "required")

	_, err = NewDeposit(map[string]any{"orderId": "order123", "amount": true})
	requireValidationFailure(t, err, "amount", "numeric")

	r, err := NewDeposit(map[string]any{"orderId": "order123", "amount": 100})
	require.NoError(t, err)
	assert.Equal(t, "order123", r.OrderID)
	assert.Equal(t, int64(100), *r.Amount)
}

func TestNewCancel(t *testing.T) {
	_, err := NewCancel(map[string]any{})
	requireValidationFailure(t, err, "orderId", "required")

	_, err = NewCancel(nil)
	requireValidationFailure(t, err, "orderId", "required")

	r, err := NewCancel(map[string]any{"orderId": "order123"})
	require.NoError(t, err)
	assert.Equal(t, "order123", r.OrderID)
}

func TestNewRefund(t *testing.T) {
	_, err := NewRefund(map[string]any{"amount": 100})
	requireValidationFailure(t, err, "orderId", "required")

	r, err := NewRefund(map[string]any{"orderId": "order123", "amount": 500})
	require.NoError(t, err)
	assert.Equal(t, "order123", r.OrderID)
	assert.Equal(t, int64(500), *r.Amount)
}

func TestNewStatus(t *testing.T) {
	_, err := NewStatus(map[string]any{})
	requireValidationFailure(t, err, "orderId", "required")

	r, err := NewStatus(map[string]any{"orderId": "order123"})
	require.NoError(t, err)
	assert.Equal(t, "order123", r.OrderID)
}

func TestNewExtendedStatus(t *testing.T) {
	_, err := NewExtendedStatus(map[string]any{"orderId": "order123"})
	requireValidationFailure(t, err, "orderNumber", "required")

	_, err = NewExtendedStatus(map[string]any{"orderNumber": "12345"})
	requireValidationFailure(t, err, "orderId", "required")

	r, err := NewExtendedStatus(map[string]any{"orderId": "order123", "orderNumber": "12345"})
	require.NoError(t, err)
	assert.Equal(t, "order123", r.OrderID)
	assert.Equal(t, "12345", r.OrderNumber)
}

func TestValidate_StructLiterals(t *testing.T) {
	assert.NoError(t, Deposit{OrderID: "o", Amount: Int64(0)}.Validate())
	assert.Error(t, Deposit{OrderID: "o"}.Validate())
	assert.Error(t, Refund{Amount: Int64(10)}.Validate())
	assert.NoError(t, Register{OrderNumber: "1", Amount: Int64(1), ReturnURL: "https://example.com", SessionTimeoutSecs: Int(60)}.Validate())
	assert.Error(t, Register{OrderNumber: "1", Amount: Int64(1), ReturnURL: "https://example.com", SessionTimeoutSecs: Int(-5)}.Validate())
}

func TestEncodeParams(t *testing.T) {
	t.Run("present fields only", func(t *testing.T) {
		params, err := encodeParams(Register{
			OrderNumber: "87654321",
			Amount:      Int64(100),
			ReturnURL:   "https://example.com/finish.html",
		})
		require.NoError(t, err)
		assert.Equal(t, "87654321", params.Get("orderNumber"))
		assert.Equal(t, "100", params.Get("amount"))
		assert.Equal(t, "https://example.com/finish.html", params.Get("returnUrl"))
		for _, key := range []string{"failUrl", "description", "clientId", "jsonParams", "sessionTimeoutSecs", "bindingId"} {
			_, ok := params[key]
			assert.False(t, ok, "unexpected %s parameter", key)
		}
	})

	t.Run("optional fields and json params", func(t *testing.T) {
		params, err := encodeParams(PreAuthorize{
			OrderNumber:        "1",
			Amount:             Int64(0),
			ReturnURL:          "https://example.com",
			Description:        "Test order",
			JSONParams:         map[string]any{"email": "test@example.com"},
			SessionTimeoutSecs: Int(1800),
		})
		require.NoError(t, err)
		assert.Equal(t, "0", params.Get("amount"))
		assert.Equal(t, "Test order", params.Get("description"))
		assert.JSONEq(t, `{"email":"test@example.com"}`, params.Get("jsonParams"))
		assert.Equal(t, "1800", params.Get("sessionTimeoutSecs"))
	})
}
