package shim

import "errors"

// Common device errors.
var (
	// ErrCreationFailed is returned when the native API rejects the creation
	// of a resource or view. The returned handle is always null.
	ErrCreationFailed = errors.New("shim: native creation failed")

	// ErrUnsupported is returned when the native API generation cannot
	// represent the requested resource or view at all.
	ErrUnsupported = errors.New("shim: not supported by native API")

	// ErrInvalidHandle is returned when a handle does not refer to a live
	// object of this device.
	ErrInvalidHandle = errors.New("shim: invalid handle")
)
