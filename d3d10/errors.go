package d3d10

import "errors"

// Native error codes.
var (
	ErrInvalidArg  = errors.New("d3d10: invalid argument")
	ErrOutOfMemory = errors.New("d3d10: out of memory")
	ErrUnsupported = errors.New("d3d10: unsupported")
)
