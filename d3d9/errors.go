package d3d9

import "errors"

// Native error codes.
var (
	ErrInvalidCall      = errors.New("d3d9: invalid call")
	ErrNotAvailable     = errors.New("d3d9: not available")
	ErrNotFound         = errors.New("d3d9: not found")
	ErrOutOfVideoMemory = errors.New("d3d9: out of video memory")
	ErrDeviceLost       = errors.New("d3d9: device lost")
	ErrWasStillDrawing  = errors.New("d3d9: was still drawing")
)

// ErrStateBlock is returned when the device could not record or capture
// the state blocks it needs for copy emulation.
var ErrStateBlock = errors.New("d3d9: state block unavailable")

// ErrDeviceReset is returned by operations issued between a reset
// teardown and the following re-initialization.
var ErrDeviceReset = errors.New("d3d9: device is being reset")
