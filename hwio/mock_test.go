package hwio

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/moffa90/go-ivcam/calibration"
)

// MockTransport simulates the monitor endpoints for testing
type MockTransport struct {
	mu        sync.Mutex
	writes    [][]byte
	responses [][]byte
	respIdx   int
	writeErr  error
	readErr   error
	shortBy   int
	delay     time.Duration
	released  int

	outCalls int32
	inCalls  int32
	inflight int32
	overlap  int32
}

func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

func (m *MockTransport) BulkTransfer(ctx context.Context, endpoint uint8, data []byte) (int, error) {
	if atomic.AddInt32(&m.inflight, 1) > 1 {
		atomic.StoreInt32(&m.overlap, 1)
	}
	defer atomic.AddInt32(&m.inflight, -1)

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if endpoint&0x80 == 0 {
		atomic.AddInt32(&m.outCalls, 1)
		if m.writeErr != nil {
			return 0, m.writeErr
		}
		m.writes = append(m.writes, append([]byte(nil), data...))
		return len(data) - m.shortBy, nil
	}

	atomic.AddInt32(&m.inCalls, 1)
	if m.readErr != nil {
		return 0, m.readErr
	}
	if m.respIdx >= len(m.responses) {
		return 0, errors.New("no response queued")
	}
	resp := m.responses[m.respIdx]
	m.respIdx++
	return copy(data, resp), nil
}

func (m *MockTransport) Release() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.released++
	return nil
}

func (m *MockTransport) AddResponse(raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, raw)
}

func (m *MockTransport) Writes() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// MockDevice simulates an opened camera
type MockDevice struct {
	transport *MockTransport
	claimErr  error
	claimed   []int
	closed    int
}

func (d *MockDevice) ClaimInterface(num int) (Transport, error) {
	d.claimed = append(d.claimed, num)
	if d.claimErr != nil {
		return nil, d.claimErr
	}
	return d.transport, nil
}

func (d *MockDevice) Close() error {
	d.closed++
	return nil
}

// MockContext opens a single MockDevice
type MockContext struct {
	device  *MockDevice
	openErr error
	vid     uint16
	pid     uint16
}

func NewMockContext(transport *MockTransport) *MockContext {
	return &MockContext{device: &MockDevice{transport: transport}}
}

func (c *MockContext) OpenDeviceWithVIDPID(vid, pid uint16) (Device, error) {
	c.vid, c.pid = vid, pid
	if c.openErr != nil {
		return nil, c.openErr
	}
	if c.device == nil {
		return nil, nil
	}
	return c.device, nil
}

// Mock logger for testing
type MockLogger struct {
	mu        sync.Mutex
	debugMsgs []string
	infoMsgs  []string
	errorMsgs []string
}

func (l *MockLogger) Debug(msg string, kv ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugMsgs = append(l.debugMsgs, msg)
}

func (l *MockLogger) Info(msg string, kv ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infoMsgs = append(l.infoMsgs, msg)
}

func (l *MockLogger) Error(msg string, kv ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorMsgs = append(l.errorMsgs, msg)
}

// MockCalibrator records what the decoder hands over
type MockCalibrator struct {
	array       []float32
	params      *calibration.Parameters
	temperature *calibration.TemperatureData
	loop        *calibration.ThermalLoopParams
	buildErr    error
}

func (c *MockCalibrator) BuildParametersFromArray(values []float32) error {
	c.array = append([]float32(nil), values...)
	return c.buildErr
}

func (c *MockCalibrator) BuildParameters(params calibration.Parameters) error {
	c.params = &params
	return c.buildErr
}

func (c *MockCalibrator) InitializeThermalData(temp calibration.TemperatureData, loop calibration.ThermalLoopParams) error {
	c.temperature = &temp
	c.loop = &loop
	return nil
}
