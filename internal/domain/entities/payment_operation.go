package entities

// PaymentOperation names a merchant call forwarded to the gateway.

type PaymentOperation string

const (
	OperationRegister       PaymentOperation = "register"
	OperationPreAuthorize   PaymentOperation = "pre_authorize"
	OperationDeposit        PaymentOperation = "deposit"
	OperationCancel         PaymentOperation = "cancel"
	OperationRefund         PaymentOperation = "refund"
	OperationStatus         PaymentOperation = "status"
	OperationExtendedStatus PaymentOperation = "extended_status"
)
