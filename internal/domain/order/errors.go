package order

import "errors"

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingField         = errors.New("required field is missing")
	ErrInvalidAmount        = errors.New("total amount must be greater than zero")
	ErrInvalidPaymentMethod = errors.New("payment method must be paystack or bank_transfer")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidStatus        = errors.New("unknown order status")
	ErrInvalidTransition    = errors.New("illegal order status transition")
	ErrInvalidPaymentStatus = errors.New("unknown payment status")
)
