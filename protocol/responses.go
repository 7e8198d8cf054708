package protocol

import (
	"encoding/binary"
)

// ParseResponse splits a raw monitor response into its status word and payload.
//
// Response structure:
//
//	[OP/STATUS(4)][PAYLOAD...]
//
// The returned payload aliases the input slice. A response shorter than the
// status word is rejected with a *MalformedResponseError.
func ParseResponse(raw []byte) (op uint32, payload []byte, err error) {
	if len(raw) < StatusWordSize {
		return 0, nil, &MalformedResponseError{Length: len(raw)}
	}

	op = binary.LittleEndian.Uint32(raw[0:StatusWordSize])
	return op, raw[StatusWordSize:], nil
}

// CopyPayload copies a response payload into dst.
// Returns a *BufferTooSmallError rather than truncating when dst is too short.
func CopyPayload(dst, payload []byte) (int, error) {
	if len(payload) > len(dst) {
		return 0, &BufferTooSmallError{Need: len(payload), Have: len(dst)}
	}
	return copy(dst, payload), nil
}

// BuildResponse assembles a raw response from a status word and payload.
// Devices produce these; the host uses it for loopback and mock devices.
func BuildResponse(op uint32, payload []byte) []byte {
	raw := make([]byte, StatusWordSize+len(payload))
	binary.LittleEndian.PutUint32(raw[0:StatusWordSize], op)
	copy(raw[StatusWordSize:], payload)
	return raw
}
