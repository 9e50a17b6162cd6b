package product

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyProductID  = errors.New("product id is required")
	ErrEmptySlug       = errors.New("product slug is required")
	ErrNothingToUpdate = errors.New("no product fields to update")
)
