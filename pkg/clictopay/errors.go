package clictopay

import (
	"errors"
	"fmt"
	"strings"
)

// CommunicationErrorPrefix starts the message of every transport-level failure.
const CommunicationErrorPrefix = "Erreur lors de la communication avec le serveur de paiement ClicToPay"

const unknownErrorMessage = "Unknown error"

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("invalid clictopay request")

// Error is returned when the gateway rejects a call or cannot be reached.
//
// Code holds the gateway's errorCode. It is 0 when the failure happened before a gateway
// answer could be read (connection, HTTP status, body decoding).
type Error struct {
	Message string
	Code    int

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsGatewayError reports whether the error carries a code returned by the gateway.
func (e *Error) IsGatewayError() bool {
	return e.Code != 0
}

func newGatewayError(message string, code int) *Error {
	if message == "" {
		message = unknownErrorMessage
	}
	return &Error{Message: message, Code: code}
}

func newCommunicationError(cause error) *Error {
	return &Error{
		Message: fmt.Sprintf("%s: %s", CommunicationErrorPrefix, cause.Error()),
		Code:    0,
		cause:   cause,
	}
}

// FieldError describes one failed rule on one request parameter.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

func (f FieldError) String() string {
	switch f.Rule {
	case "required":
		return fmt.Sprintf("you must provide the `%s` parameter", f.Field)
	case "numeric":
		return fmt.Sprintf("the `%s` parameter must be numeric", f.Field)
	case "min":
		return fmt.Sprintf("the `%s` parameter must be at least %s", f.Field, f.Param)
	case "url":
		return fmt.Sprintf("the `%s` parameter must be a valid URL", f.Field)
	case "type":
		return fmt.Sprintf("the `%s` parameter has an invalid type", f.Field)
	default:
		return fmt.Sprintf("the `%s` parameter failed the %s rule", f.Field, f.Rule)
	}
}

// ValidationError is returned when a request model breaks one of its rules.
// No request is sent to the gateway in that case.
type ValidationError struct {
	Request string
	Fields  []FieldError

	cause error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		if e.cause != nil {
			return fmt.Sprintf("invalid %s request: %s", e.Request, e.cause.Error())
		}
		return fmt.Sprintf("invalid %s request", e.Request)
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.String())
	}
	return fmt.Sprintf("invalid %s request: %s", e.Request, strings.Join(msgs, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}
