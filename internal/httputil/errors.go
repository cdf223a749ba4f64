package httputil

import "errors"

// Errors returned when binding request data. Controllers map them to
// HTTP statuses, so the texts are what API clients see.
var (
	ErrInvalidBody      = errors.New("the request body could not be parsed, check it for syntax errors")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
)
