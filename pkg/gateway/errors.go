package gateway

import (
	"errors"
)

var (
	ErrNotConnected = errors.New("backend not connected")
	ErrUnavailable  = errors.New("service unavailable")
	ErrDisabled     = errors.New("backend disabled")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrClosed       = errors.New("closed")
)
