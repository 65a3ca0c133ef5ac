package entities

import "errors"

// Domain errors
var (
	ErrNilRecord = errors.New("record cannot be nil")
)
