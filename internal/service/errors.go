package service

import "errors"

// ErrValidation marks input rejected before touching the store.
var ErrValidation = errors.New("validation failed")
