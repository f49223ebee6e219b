package errs

import "errors"

var (
	ErrEmptyPayload error = errors.New("the provided json cannot be empty")
	ErrInvalidJSON  error = errors.New("the provided json could not be parsed")
)
