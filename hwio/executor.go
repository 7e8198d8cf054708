package hwio

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/semaphore"

	"github.com/moffa90/go-ivcam/protocol"
)

// Executor performs monitor request/response exchanges over a Transport.
// At most one exchange is in flight at a time.
//
// Executor is safe for concurrent use.
type Executor struct {
	transport Transport
	lock      *semaphore.Weighted
	config    Config

	// closed is guarded by lock
	closed bool
}

// NewExecutor creates an Executor on a claimed monitor transport.
// Only the logger and timeout options apply.
func NewExecutor(transport Transport, opts ...Option) *Executor {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return newExecutor(transport, cfg)
}

func newExecutor(transport Transport, cfg Config) *Executor {
	return &Executor{
		transport: transport,
		lock:      semaphore.NewWeighted(1),
		config:    cfg,
	}
}

// Execute writes request to the monitor and, when response is non-empty, reads
// the reply. It returns the status word of the reply and the number of payload
// bytes copied into response.
//
// The exchange is serialized with all other callers. If the endpoints stay busy
// for longer than the lock timeout, ErrLockTimeout is returned and nothing is
// sent. No exchange is retried.
//
// Errors:
//   - ErrClosed: the executor was closed
//   - *TransferError: a bulk transfer failed or the request was only partly written
//   - *protocol.MalformedResponseError: the reply is shorter than the status word
//   - *protocol.BufferTooSmallError: the reply payload does not fit in response
func (e *Executor) Execute(ctx context.Context, request, response []byte) (op uint32, n int, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	lockCtx, cancel := context.WithTimeout(ctx, e.config.LockTimeout)
	defer cancel()

	if err := e.lock.Acquire(lockCtx, 1); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, 0, ctxErr
		}
		e.logError("monitor lock timed out", "timeout", e.config.LockTimeout.String())
		return 0, 0, ErrLockTimeout
	}
	defer e.lock.Release(1)

	if e.closed {
		return 0, 0, ErrClosed
	}

	written, err := e.transfer(ctx, protocol.EndpointOut, request)
	if err != nil {
		e.logError("bulk transfer failed", "endpoint", "out", "error", err)
		return 0, 0, &TransferError{Endpoint: protocol.EndpointOut, Err: err}
	}
	if written != len(request) {
		return 0, 0, &TransferError{
			Endpoint: protocol.EndpointOut,
			Err:      fmt.Errorf("%w: wrote %d of %d bytes", io.ErrShortWrite, written, len(request)),
		}
	}

	if len(response) == 0 {
		return 0, 0, nil
	}

	buf := make([]byte, protocol.MaxBufferSize)
	read, err := e.transfer(ctx, protocol.EndpointIn, buf)
	if err != nil {
		e.logError("bulk transfer failed", "endpoint", "in", "error", err)
		return 0, 0, &TransferError{Endpoint: protocol.EndpointIn, Err: err}
	}

	op, payload, err := protocol.ParseResponse(buf[:read])
	if err != nil {
		e.logError("malformed monitor response", "bytes", read)
		return 0, 0, err
	}

	n, err = protocol.CopyPayload(response, payload)
	if err != nil {
		e.logError("monitor response too large", "payload", len(payload), "buffer", len(response))
		return op, 0, err
	}

	e.logDebug("monitor exchange complete",
		"op", fmt.Sprintf("0x%08X", op),
		"request", len(request),
		"payload", n,
	)

	return op, n, nil
}

// Exec frames cmd and executes it.
func (e *Executor) Exec(ctx context.Context, cmd protocol.Command, response []byte) (uint32, int, error) {
	request, err := cmd.Frame()
	if err != nil {
		return 0, 0, err
	}
	return e.Execute(ctx, request, response)
}

// Close waits for any exchange in flight, then runs release with the endpoints
// held. Later exchanges fail with ErrClosed. Only the first call runs release.
func (e *Executor) Close(release func() error) error {
	if err := e.lock.Acquire(context.Background(), 1); err != nil {
		return err
	}
	defer e.lock.Release(1)

	if e.closed {
		return nil
	}
	e.closed = true

	if release == nil {
		return nil
	}
	return release()
}

// transfer runs one bulk transfer bounded by the transfer timeout.
func (e *Executor) transfer(ctx context.Context, endpoint uint8, data []byte) (int, error) {
	tctx, cancel := context.WithTimeout(ctx, e.config.TransferTimeout)
	defer cancel()

	n, err := e.transport.BulkTransfer(tctx, endpoint, data)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return n, fmt.Errorf("timed out after %s: %w", e.config.TransferTimeout, err)
		}
		return n, err
	}
	return n, nil
}

func (e *Executor) logDebug(msg string, keysAndValues ...interface{}) {
	if e.config.Logger != nil {
		e.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (e *Executor) logError(msg string, keysAndValues ...interface{}) {
	if e.config.Logger != nil {
		e.config.Logger.Error(msg, keysAndValues...)
	}
}
