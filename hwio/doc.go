// Package hwio provides access to the monitor microcontroller of an IVCAM (F200) camera.
//
// # Overview
//
// HardwareIO is the entry point used by the camera driver. Constructing one:
//   - Opens the camera by vendor and product ID
//   - Claims the monitor interface
//   - Reads the factory calibration table with GetCalibrationTable
//   - Decodes it and hands it to an optional Calibrator
//
// Construction either completes with a Ready HardwareIO or fails with an
// *InitError; partially initialized objects are never returned.
//
// # Basic Usage
//
//	usbctx := usb.NewContext()
//	defer usbctx.Close()
//
//	hw, err := hwio.New(context.Background(), usbctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer hw.Close()
//
//	params := hw.Parameters()
//	fmt.Printf("Kc: %v\n", params.Kc)
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	hw, err := hwio.New(ctx, usbctx,
//	    hwio.WithLogger(myLogger),
//	    hwio.WithCalibrator(projection),
//	    hwio.WithLockTimeout(3*time.Second),
//	    hwio.WithTransferTimeout(time.Second),
//	)
//
// # Concurrency
//
// All monitor exchanges go through a single Executor. Exchanges are serialized:
// a caller waits at most the lock timeout for the endpoints, then fails with
// ErrLockTimeout. Each bulk transfer is bounded by the transfer timeout. Nothing
// is retried; retry policy belongs to the caller.
//
// # Error Handling
//
// The package provides structured error types:
//   - InitError: construction failed at the named stage
//   - TransferError: a bulk transfer failed
//   - protocol.MalformedResponseError: reply shorter than its status word
//   - protocol.BufferTooSmallError: reply larger than the caller's buffer
//
// # Hardware Independence
//
// This package does NOT implement USB access. It talks to the device through
// the Context, Device and Transport interfaces; package usb implements them
// with gousb, and tests use mock implementations.
package hwio
