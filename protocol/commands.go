package protocol

import (
	"encoding/binary"
	"fmt"
)

// Command is a decoded monitor request.
type Command struct {
	// Opcode selects the monitor operation
	Opcode uint32

	// Params holds the four 32-bit parameters, zero when unused
	Params [NumParams]uint32

	// Payload is the optional data appended after the header
	Payload []byte
}

// PrepareCommand writes a monitor request into buf and returns the number of bytes written.
// Unused parameters should be passed as zero; a nil payload produces a header-only request.
//
// Frame structure (all fields little-endian):
//
//	[LEN(2)][MAGIC(2)][OPCODE(4)][P1(4)][P2(4)][P3(4)][P4(4)][PAYLOAD...]
//
// LEN counts every byte after the LEN and MAGIC fields, so it always equals
// the returned size minus LengthFieldSize.
// Returns ErrBufferTooSmall when buf cannot hold the header and payload.
func PrepareCommand(buf []byte, op uint32, params [NumParams]uint32, payload []byte) (int, error) {
	if len(buf) < HeaderSize {
		return 0, ErrBufferTooSmall
	}
	size := HeaderSize + len(payload)
	if size > len(buf) || size > MaxBufferSize {
		return 0, fmt.Errorf("%w: need %d bytes for a %d byte payload, have %d",
			ErrBufferTooSmall, size, len(payload), min(len(buf), MaxBufferSize))
	}

	binary.LittleEndian.PutUint16(buf[2:4], MagicNumber)
	binary.LittleEndian.PutUint32(buf[4:8], op)

	index := 8
	for _, p := range params {
		binary.LittleEndian.PutUint32(buf[index:index+4], p)
		index += 4
	}

	if len(payload) > 0 {
		copy(buf[index:], payload)
		index += len(payload)
	}

	binary.LittleEndian.PutUint16(buf[0:2], uint16(index-LengthFieldSize))

	return index, nil
}

// BuildCommand allocates and returns a complete monitor request frame.
//
// Example:
//
//	frame, err := protocol.BuildCommand(protocol.OpGetCalibrationTable, [4]uint32{}, nil)
func BuildCommand(op uint32, params [NumParams]uint32, payload []byte) ([]byte, error) {
	frame := make([]byte, HeaderSize+len(payload))
	n, err := PrepareCommand(frame, op, params, payload)
	if err != nil {
		return nil, err
	}
	return frame[:n], nil
}

// Frame encodes the command into a new request frame.
func (c *Command) Frame() ([]byte, error) {
	return BuildCommand(c.Opcode, c.Params, c.Payload)
}

// ParseCommand decodes a request frame produced by PrepareCommand.
// The length field and magic number are validated; the payload is copied.
func ParseCommand(frame []byte) (*Command, error) {
	if len(frame) < HeaderSize {
		return nil, fmt.Errorf("request too short: got %d bytes, minimum is %d", len(frame), HeaderSize)
	}

	magic := binary.LittleEndian.Uint16(frame[2:4])
	if magic != MagicNumber {
		return nil, fmt.Errorf("invalid magic number: got 0x%04X, expected 0x%04X", magic, MagicNumber)
	}

	length := int(binary.LittleEndian.Uint16(frame[0:2]))
	if length != len(frame)-LengthFieldSize {
		return nil, fmt.Errorf("length mismatch: field says %d bytes, frame carries %d",
			length, len(frame)-LengthFieldSize)
	}

	cmd := &Command{
		Opcode: binary.LittleEndian.Uint32(frame[4:8]),
	}
	for i := range cmd.Params {
		off := 8 + 4*i
		cmd.Params[i] = binary.LittleEndian.Uint32(frame[off : off+4])
	}
	if len(frame) > HeaderSize {
		cmd.Payload = make([]byte, len(frame)-HeaderSize)
		copy(cmd.Payload, frame[HeaderSize:])
	}

	return cmd, nil
}

// OpcodeName returns a human-readable name for a monitor opcode.
// 0xFF is shared by BIST and GetPowerGearState and is reported as BIST.
func OpcodeName(op uint32) string {
	switch op {
	case OpUpdateCalib:
		return "UpdateCalib"
	case OpGetIRTemp:
		return "GetIRTemp"
	case OpGetMEMSTemp:
		return "GetMEMSTemp"
	case OpHWReset:
		return "HWReset"
	case OpGVD:
		return "GVD"
	case OpBIST:
		return "BIST"
	case OpGoToDFU:
		return "GoToDFU"
	case OpGetCalibrationTable:
		return "GetCalibrationTable"
	case OpDebugFormat:
		return "DebugFormat"
	case OpTimeStampEnable:
		return "TimeStampEnable"
	case OpSetDefaultControls:
		return "SetDefaultControls"
	case OpGetDefaultControls:
		return "GetDefaultControls"
	case OpGetFWLastError:
		return "GetFWLastError"
	case OpCheckI2cConnect:
		return "CheckI2cConnect"
	case OpCheckRGBConnect:
		return "CheckRGBConnect"
	case OpCheckDPTConnect:
		return "CheckDPTConnect"
	default:
		return fmt.Sprintf("opcode 0x%02X", op)
	}
}
