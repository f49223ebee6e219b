package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument       error = errors.New("invalid argument")
	ErrMalformedPayload      error = errors.New("malformed payload")
	ErrUnrecognizedEnumValue error = errors.New("unrecognized enum value")
)

// InvalidArgument tags err so that it matches both itself and ErrInvalidArgument.
func InvalidArgument(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

// MalformedPayload tags err so that it matches both itself and ErrMalformedPayload.
func MalformedPayload(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
}

// UnrecognizedEnumValue reports a wire label that does not map to any value of enumName.
func UnrecognizedEnumValue(enumName string, value string) error {
	return fmt.Errorf("%w: '%s' is not a valid %s", ErrUnrecognizedEnumValue, value, enumName)
}
