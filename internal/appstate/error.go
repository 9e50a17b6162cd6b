package appstate

import "errors"

var ErrInvalidCatalog = errors.New("invalid catalog")
