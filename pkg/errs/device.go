package errs

import "errors"

var (
	ErrDeviceIDRequired           error = errors.New("device id cannot be empty")
	ErrExportImportIDRequired     error = errors.New("export/import device id cannot be empty")
	ErrAuthenticationRequired     error = errors.New("authentication cannot be empty")
	ErrAuthenticationTypeRequired error = errors.New("authentication type cannot be empty")
	ErrSymmetricKeyRequired       error = errors.New("symmetric key cannot be empty")
	ErrInvalidThumbprint          error = errors.New("invalid format for primary/secondary thumbprint")
)
