package hwio

import "context"

// Context enumerates and opens USB devices.
type Context interface {
	// OpenDeviceWithVIDPID opens the first device matching vid and pid.
	// It returns a nil Device and nil error when nothing matches.
	OpenDeviceWithVIDPID(vid, pid uint16) (Device, error)
}

// Device is an opened USB device.
type Device interface {
	// ClaimInterface claims an interface and returns a transport for its endpoints.
	ClaimInterface(num int) (Transport, error)

	// Close closes the device.
	Close() error
}

// Transport performs bulk transfers on a claimed interface.
type Transport interface {
	// BulkTransfer moves data to or from the given endpoint address.
	// The direction is taken from bit 7 of endpoint. The transfer is bounded
	// by the deadline of ctx. Returns the number of bytes transferred.
	BulkTransfer(ctx context.Context, endpoint uint8, data []byte) (int, error)

	// Release releases the claimed interface.
	Release() error
}
