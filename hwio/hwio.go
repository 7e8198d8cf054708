package hwio

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/moffa90/go-ivcam/calibration"
	"github.com/moffa90/go-ivcam/protocol"
)

// State is the lifecycle state of a HardwareIO.
type State int

// Lifecycle states, in order.
const (
	StateUninitialized State = iota
	StateOpening
	StateCalibrationLoading
	StateReady
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateOpening:
		return "opening"
	case StateCalibrationLoading:
		return "calibration-loading"
	case StateReady:
		return "ready"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// HardwareIO owns the monitor interface of an IVCAM camera and the calibration
// read from it at construction.
//
// The calibration is read once; recalibrating requires closing the HardwareIO
// and creating a new one. HardwareIO is safe for concurrent use.
type HardwareIO struct {
	device    Device
	transport Transport
	executor  *Executor
	config    Config
	table     calibration.Table

	mu    sync.Mutex
	state State
}

// New opens the camera, claims the monitor interface, and reads and decodes the
// calibration table. It either returns a Ready HardwareIO or an error; on error
// everything acquired so far has been released.
//
// Example:
//
//	usbctx := usb.NewContext()
//	defer usbctx.Close()
//
//	hw, err := hwio.New(ctx, usbctx, hwio.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer hw.Close()
//
//	params := hw.Parameters()
func New(ctx context.Context, usbctx Context, opts ...Option) (*HardwareIO, error) {
	if usbctx == nil {
		return nil, ErrNilContext
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &HardwareIO{config: cfg}
	h.setState(StateOpening)

	dev, err := usbctx.OpenDeviceWithVIDPID(cfg.VendorID, cfg.ProductID)
	if err == nil && dev == nil {
		err = fmt.Errorf("%w: VID=0x%04X PID=0x%04X", ErrDeviceNotFound, cfg.VendorID, cfg.ProductID)
	}
	if err != nil {
		h.logError("open device failed", "error", err)
		return nil, &InitError{Stage: "open device", Err: err}
	}
	h.device = dev

	transport, err := dev.ClaimInterface(protocol.MonitorInterface)
	if err != nil {
		h.logError("claim interface failed", "interface", protocol.MonitorInterface, "error", err)
		_ = dev.Close()
		return nil, &InitError{Stage: "claim interface", Err: err}
	}
	h.transport = transport
	h.executor = newExecutor(transport, cfg)

	h.logDebug("monitor interface claimed",
		"vid", fmt.Sprintf("0x%04X", cfg.VendorID),
		"pid", fmt.Sprintf("0x%04X", cfg.ProductID),
		"interface", protocol.MonitorInterface,
	)

	h.setState(StateCalibrationLoading)

	table, err := h.loadCalibration(ctx)
	if err != nil {
		h.logError("calibration failed", "error", err)
		_ = h.release()
		return nil, &InitError{Stage: "load calibration", Err: err}
	}
	h.table = *table

	h.logInfo("calibration loaded",
		"version", table.Version,
		"legacy", table.Legacy,
		"thermal", table.HasThermal,
	)

	h.setState(StateReady)
	return h, nil
}

// Parameters returns the decoded camera calibration parameters.
func (h *HardwareIO) Parameters() calibration.Parameters {
	return h.table.Parameters
}

// Table returns the full decoded calibration table.
func (h *HardwareIO) Table() calibration.Table {
	return h.table
}

// State returns the current lifecycle state.
func (h *HardwareIO) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Exec sends a monitor command and reads its reply into response.
// It shares the lock used for calibration, so it may be called concurrently.
// After Close it returns ErrClosed.
//
// Example:
//
//	buf := make([]byte, 4)
//	_, n, err := hw.Exec(ctx, protocol.Command{Opcode: protocol.OpGetFWLastError}, buf)
func (h *HardwareIO) Exec(ctx context.Context, cmd protocol.Command, response []byte) (uint32, int, error) {
	if h.State() == StateClosed {
		return 0, 0, ErrClosed
	}
	return h.executor.Exec(ctx, cmd, response)
}

// Close waits for an exchange in flight to finish, then releases the monitor
// interface and closes the device. Calling Close more than once is allowed.
func (h *HardwareIO) Close() error {
	h.mu.Lock()
	if h.state == StateClosed {
		h.mu.Unlock()
		return nil
	}
	h.state = StateClosed
	h.mu.Unlock()

	err := h.executor.Close(h.release)

	h.notify(StateClosed)
	return err
}

// release releases the interface and closes the device.
func (h *HardwareIO) release() error {
	var errs []error
	if h.transport != nil {
		if err := h.transport.Release(); err != nil {
			errs = append(errs, fmt.Errorf("release interface: %w", err))
		}
		h.transport = nil
	}
	if h.device != nil {
		if err := h.device.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close device: %w", err))
		}
		h.device = nil
	}
	return errors.Join(errs...)
}

// fetchCalibration reads the raw calibration table into buf and returns its length.
func (h *HardwareIO) fetchCalibration(ctx context.Context, buf []byte) (int, error) {
	var request [protocol.HeaderSize]byte
	size, err := protocol.PrepareCommand(request[:], protocol.OpGetCalibrationTable, [protocol.NumParams]uint32{}, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCalibrationRetrieval, err)
	}

	_, n, err := h.executor.Execute(ctx, request[:size], buf)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCalibrationRetrieval, err)
	}

	return n, nil
}

// loadCalibration fetches and decodes the calibration table, then hands it to
// the configured Calibrator.
func (h *HardwareIO) loadCalibration(ctx context.Context) (*calibration.Table, error) {
	buf := make([]byte, h.config.CalibrationBufferSize)
	n, err := h.fetchCalibration(ctx, buf)
	if err != nil {
		return nil, err
	}

	table, err := calibration.Decode(buf[:n])
	if err != nil {
		return nil, fmt.Errorf("decode calibration: %w", err)
	}

	if table.Truncated {
		h.logInfo("calibration table shorter than its layout", "bytes", n, "version", table.Version)
	}

	if err := h.projectionCalibrate(table); err != nil {
		return nil, err
	}

	return table, nil
}

// projectionCalibrate hands the decoded table to the Calibrator, if any.
func (h *HardwareIO) projectionCalibrate(table *calibration.Table) error {
	c := h.config.Calibrator
	if c == nil {
		return nil
	}

	if table.Legacy {
		if err := c.BuildParametersFromArray(table.LegacyValues[:]); err != nil {
			return fmt.Errorf("build parameters: %w", err)
		}
		return nil
	}

	if err := c.BuildParameters(table.Parameters); err != nil {
		return fmt.Errorf("build parameters: %w", err)
	}

	if table.HasThermal {
		tester := table.Tester
		if err := c.InitializeThermalData(tester.TemperatureData, tester.ThermalLoopParams); err != nil {
			return fmt.Errorf("initialize thermal data: %w", err)
		}
	}

	return nil
}

// setState records a transition and notifies the state callback.
func (h *HardwareIO) setState(s State) {
	h.mu.Lock()
	h.state = s
	h.mu.Unlock()

	h.notify(s)
}

func (h *HardwareIO) notify(s State) {
	if h.config.StateCallback != nil {
		h.config.StateCallback(s)
	}
}

func (h *HardwareIO) logDebug(msg string, keysAndValues ...interface{}) {
	if h.config.Logger != nil {
		h.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (h *HardwareIO) logInfo(msg string, keysAndValues ...interface{}) {
	if h.config.Logger != nil {
		h.config.Logger.Info(msg, keysAndValues...)
	}
}

func (h *HardwareIO) logError(msg string, keysAndValues ...interface{}) {
	if h.config.Logger != nil {
		h.config.Logger.Error(msg, keysAndValues...)
	}
}
