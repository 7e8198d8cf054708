// Package protocol implements the IVCAM monitor command protocol.
//
// The monitor is the auxiliary microcontroller of the F200 depth camera. The host
// talks to it over a dedicated pair of USB bulk endpoints on interface 4, separate
// from the video streaming path.
//
// # Protocol Overview
//
// Every exchange is a single request followed by a single response:
//
//	Request:  [LEN(2)][MAGIC(2)][OPCODE(4)][P1(4)][P2(4)][P3(4)][P4(4)][PAYLOAD...]
//	Response: [OP/STATUS(4)][PAYLOAD...]
//
// Where:
//   - LEN = number of bytes following the LEN and MAGIC fields
//   - MAGIC = 0xCDAB
//   - P1..P4 = opcode specific parameters, zero when unused
//
// All multi-byte fields are little-endian. Transfers never exceed MaxBufferSize.
//
// # Command Builders
//
// PrepareCommand writes a request into a caller-owned buffer; BuildCommand allocates:
//
//	var buf [protocol.HeaderSize]byte
//	n, err := protocol.PrepareCommand(buf[:], protocol.OpGetCalibrationTable, [4]uint32{}, nil)
//
// # Response Parsing
//
// ParseResponse splits the status word from the payload:
//
//	op, payload, err := protocol.ParseResponse(raw)
//
// A response shorter than four bytes yields a *MalformedResponseError, and
// CopyPayload reports a *BufferTooSmallError instead of truncating.
package protocol
