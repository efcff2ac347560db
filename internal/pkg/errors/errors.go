package errors

import "errors"

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPreconditionFailed signals a workflow phase invoked out of order.
	ErrPreconditionFailed = errors.New("precondition not met")
	// ErrDownloadFailed signals an external image that could not be fetched.
	ErrDownloadFailed = errors.New("download failed")
)
