package protocol

import (
	"errors"
	"fmt"
)

// ErrBufferTooSmall is returned when a request buffer cannot hold the frame.
var ErrBufferTooSmall = errors.New("request buffer too small")

// MalformedResponseError indicates a response too short to carry a status word.
type MalformedResponseError struct {
	// Length is the number of bytes actually received
	Length int
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: got %d bytes, minimum is %d", e.Length, StatusWordSize)
}

// BufferTooSmallError indicates a response payload larger than the caller's buffer.
type BufferTooSmallError struct {
	// Need is the payload size returned by the device
	Need int

	// Have is the capacity of the destination buffer
	Have int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("response buffer too small: payload is %d bytes, buffer holds %d", e.Need, e.Have)
}

// IsMalformedResponse returns true if the error is a MalformedResponseError.
func IsMalformedResponse(err error) bool {
	var target *MalformedResponseError
	return errors.As(err, &target)
}

// IsBufferTooSmall returns true if the error reports a buffer too small for the data.
func IsBufferTooSmall(err error) bool {
	var target *BufferTooSmallError
	return errors.As(err, &target) || errors.Is(err, ErrBufferTooSmall)
}
