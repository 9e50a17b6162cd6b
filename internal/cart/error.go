package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrEmptyProductID  = errors.New("product id is required")
	ErrEmptyCartItemID = errors.New("cart item id is required")
)
