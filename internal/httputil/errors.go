package httputil

import "errors"

// Binding errors. They are client errors and map to 400.
var (
	ErrInvalidBody      = errors.New("the request body could not be parsed, check that it is valid JSON of the expected shape")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidQuery     = errors.New("the query string could not be parsed, check the parameter values")
)
