package store

import "errors"

var ErrBootstrap = errors.New("bootstrap failed")
