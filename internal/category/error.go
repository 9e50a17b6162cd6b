package category

import "errors"

var (
	ErrEmptyCategoryID   = errors.New("category id is required")
	ErrEmptyCategoryName = errors.New("category name is required")
)
