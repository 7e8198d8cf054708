package hwio

import "github.com/moffa90/go-ivcam/calibration"

// StateCallback is called on every lifecycle transition of a HardwareIO.
// Implementations should return quickly; construction is blocked while it runs.
//
// Example:
//
//	hw, err := hwio.New(ctx, usbctx,
//	    hwio.WithStateCallback(func(s hwio.State) {
//	        fmt.Println("monitor:", s)
//	    }),
//	)
type StateCallback func(State)

// Logger is an optional logging interface that can be provided to HardwareIO.
// This allows integration with any logging framework; see package logging
// for a zerolog adapter.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}

// Calibrator receives the decoded calibration and builds the projection model
// used by the rest of the camera driver.
//
// Version 13 tables are handed over as a flat float array. Newer tables are
// handed over as structured parameters, followed by the thermal data when the
// table carries it.
type Calibrator interface {
	// BuildParametersFromArray builds the model from a version 13 float array
	BuildParametersFromArray(values []float32) error

	// BuildParameters builds the model from structured parameters
	BuildParameters(params calibration.Parameters) error

	// InitializeThermalData provides the factory thermal compensation data
	InitializeThermalData(temp calibration.TemperatureData, loop calibration.ThermalLoopParams) error
}
