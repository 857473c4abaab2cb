package resource

import "errors"

var (
	ErrNotFound     = errors.New("employee record not found")
	ErrInvalidID    = errors.New("invalid employee id format")
	ErrEmptyPayload = errors.New("no employee data provided")
	ErrBadPayload   = errors.New("invalid import payload")
)
