package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyOrderID         = errors.New("order id is required")
	ErrAddressRequired      = errors.New("shipping and billing address are required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)
