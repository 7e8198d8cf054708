package hwio

import (
	"time"

	"github.com/moffa90/go-ivcam/protocol"
)

// Config holds the HardwareIO configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// Calibrator receives the decoded calibration (optional)
	Calibrator Calibrator

	// StateCallback is called on lifecycle transitions (optional)
	StateCallback StateCallback

	// LockTimeout bounds the wait for exclusive access to the monitor endpoints
	LockTimeout time.Duration

	// TransferTimeout bounds each bulk transfer
	TransferTimeout time.Duration

	// CalibrationBufferSize is the destination size for the calibration table
	CalibrationBufferSize int

	// VendorID and ProductID select the device to open
	VendorID  uint16
	ProductID uint16
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		LockTimeout:           protocol.DefaultLockTimeout,
		TransferTimeout:       protocol.DefaultTransferTimeout,
		CalibrationBufferSize: protocol.CalibrationBufferSize,
		VendorID:              protocol.VendorID,
		ProductID:             protocol.ProductID,
	}
}

// Option is a functional option for configuring HardwareIO and Executor.
type Option func(*Config)

// WithLogger sets a logger for monitor operations.
//
// Example:
//
//	hw, err := hwio.New(ctx, usbctx, hwio.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithCalibrator sets the collaborator that receives the decoded calibration.
func WithCalibrator(calibrator Calibrator) Option {
	return func(c *Config) {
		c.Calibrator = calibrator
	}
}

// WithStateCallback sets a callback invoked on lifecycle transitions.
func WithStateCallback(callback StateCallback) Option {
	return func(c *Config) {
		c.StateCallback = callback
	}
}

// WithLockTimeout sets how long a command waits for the monitor endpoints.
// Default is 3 seconds.
//
// Example:
//
//	hw, err := hwio.New(ctx, usbctx, hwio.WithLockTimeout(5*time.Second))
func WithLockTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.LockTimeout = timeout
		}
	}
}

// WithTransferTimeout sets the timeout of each bulk transfer.
// Default is 1 second.
func WithTransferTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.TransferTimeout = timeout
		}
	}
}

// WithCalibrationBufferSize sets the destination size for the calibration table.
// Values outside 1..MaxBufferSize are ignored.
func WithCalibrationBufferSize(size int) Option {
	return func(c *Config) {
		if size > 0 && size <= protocol.MaxBufferSize {
			c.CalibrationBufferSize = size
		}
	}
}

// WithVIDPID overrides the USB vendor and product IDs of the camera.
func WithVIDPID(vid, pid uint16) Option {
	return func(c *Config) {
		c.VendorID = vid
		c.ProductID = pid
	}
}
