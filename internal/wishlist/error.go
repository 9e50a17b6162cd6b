package wishlist

import "errors"

var (
	ErrEmptyProductID = errors.New("product id is required")
	ErrEmptyItemID    = errors.New("wishlist item id is required")
)
