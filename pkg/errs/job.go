package errs

import "errors"

var (
	ErrJobIDRequired         error = errors.New("job id cannot be empty")
	ErrJobProgressOutOfRange error = errors.New("job progress must be between 0 and 100")
)
