package clictopay

import "strconv"

// OrderStatus is the order state reported by getOrderStatus and getOrderStatusExtended.
type OrderStatus int

const (
	OrderStatusRegistered    OrderStatus = 0
	OrderStatusPreAuthorized OrderStatus = 1
	OrderStatusDeposited     OrderStatus = 2
	OrderStatusReversed      OrderStatus = 3
	OrderStatusRefunded      OrderStatus = 4
	OrderStatusACSInitiated  OrderStatus = 5
	OrderStatusDeclined      OrderStatus = 6
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusRegistered:    "registered",
	OrderStatusPreAuthorized: "pre_authorized",
	OrderStatusDeposited:     "deposited",
	OrderStatusReversed:      "reversed",
	OrderStatusRefunded:      "refunded",
	OrderStatusACSInitiated:  "acs_initiated",
	OrderStatusDeclined:      "declined",
}

func (s OrderStatus) String() string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}
	return "unknown(" + strconv.Itoa(int(s)) + ")"
}

// IsPaid reports whether the amount was captured, fully or after a pre-authorization.
func (s OrderStatus) IsPaid() bool {
	return s == OrderStatusDeposited
}
