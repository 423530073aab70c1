package gpu

import "errors"

// ErrDisabled is returned when the binary was built without OpenCL support.
var ErrDisabled = errors.New("OpenCL support has been disabled at compile time")

// NewOpenCL opens the OpenCL device described by opts. This build carries
// only the device contract; the caller treats the error as a fatal
// configuration failure, the same way a missing platform or device would be.
func NewOpenCL(opts Options) (Device, error) {
	return nil, ErrDisabled
}
