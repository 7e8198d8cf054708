package hwio

import (
	"errors"
	"fmt"
)

var (
	// ErrNilContext is returned by New when no USB context is given.
	ErrNilContext = errors.New("must pass a USB context")

	// ErrDeviceNotFound is returned when no camera matches the vendor and product IDs.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrLockTimeout is returned when the monitor endpoints stay busy past the lock timeout.
	ErrLockTimeout = errors.New("monitor lock timed out")

	// ErrCalibrationRetrieval wraps failures of the GetCalibrationTable exchange.
	ErrCalibrationRetrieval = errors.New("calibration retrieval failed")

	// ErrClosed is returned for commands issued after Close.
	ErrClosed = errors.New("hardware io closed")
)

// InitError indicates that HardwareIO construction failed.
// No partially initialized object is ever returned alongside it.
type InitError struct {
	// Stage is the initialization step that failed
	Stage string

	// Err is the underlying error
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("hardware io init failed: %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// TransferError indicates a failed bulk transfer on a monitor endpoint.
type TransferError struct {
	// Endpoint is the endpoint address of the failed transfer
	Endpoint uint8

	// Err is the underlying transport error
	Err error
}

func (e *TransferError) Error() string {
	dir := "out"
	if e.Endpoint&0x80 != 0 {
		dir = "in"
	}
	return fmt.Sprintf("bulk transfer (endpoint_%s 0x%02X) failed: %v", dir, e.Endpoint, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
