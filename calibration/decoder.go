package calibration

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/moffa90/go-ivcam/protocol"
)

// Layout constants for the calibration table.
const (
	// MinSupportedVersion is the oldest table version that can be decoded
	MinSupportedVersion = 13

	// HeaderSize is the size of the tag and version header
	HeaderSize = 4

	// ParametersSize is the encoded size of Parameters
	ParametersSize = 448

	// LegacyFloatCount is the number of floats in a version 13 table
	LegacyFloatCount = 100

	// parametersEnd is the end of the parameter block; it is also the
	// window read by both layouts.
	parametersEnd = HeaderSize + ParametersSize

	// VersionedSize is the size of the versioned structure:
	// a 4-byte unique number followed by the header and the parameters
	VersionedSize = 4 + parametersEnd

	// CalibParamBytes is the space reserved for calibration parameters in the table
	CalibParamBytes = 512

	// TesterDataOffset is where thermal tester data starts in a versioned table
	TesterDataOffset = CalibParamBytes + HeaderSize

	// ThermalSize is the encoded size of TemperatureData plus ThermalLoopParams
	ThermalSize = 104

	// TesterDataEnd is the minimum table length carrying thermal tester data
	TesterDataEnd = TesterDataOffset + ThermalSize
)

// ValidationTag marks a valid calibration table.
var ValidationTag = [2]byte{0x14, 0x0A}

// Version validates the table header and returns the table version.
//
// Header format:
//
//	[TAG(2)][VERSION(2)]
//
// The version is BCD-like: each byte holds one decimal digit.
func Version(data []byte) (int, error) {
	if len(data) < HeaderSize {
		return 0, fmt.Errorf("%w: got %d bytes, minimum is %d", ErrShortBlob, len(data), HeaderSize)
	}

	if data[0] != ValidationTag[0] || data[1] != ValidationTag[1] {
		return 0, fmt.Errorf("%w: got 0x%02X 0x%02X, expected 0x%02X 0x%02X",
			ErrInvalidTag, data[0], data[1], ValidationTag[0], ValidationTag[1])
	}

	return BCDToInt(data[2:4]), nil
}

// BCDToInt composes a decimal number from one digit per byte, most significant first.
func BCDToInt(digits []byte) int {
	r := 0
	for _, d := range digits {
		r = r*10 + int(d)
	}
	return r
}

// Decode decodes a calibration table, dispatching on its version.
// Nothing is returned for invalid or unsupported tables.
//
// Example:
//
//	table, err := calibration.Decode(payload)
func Decode(data []byte) (*Table, error) {
	version, err := Version(data)
	if err != nil {
		return nil, err
	}

	switch {
	case version == MinSupportedVersion:
		return decodeLegacy(data)
	case version > MinSupportedVersion:
		return decodeVersioned(data, version)
	default:
		return nil, &UnsupportedVersionError{Version: version}
	}
}

// DecodeTransfer decodes a raw GetCalibrationTable transfer, which still
// starts with the 4-byte response status word.
func DecodeTransfer(raw []byte) (*Table, error) {
	_, payload, err := protocol.ParseResponse(raw)
	if err != nil {
		return nil, err
	}
	return Decode(payload)
}

// DecodeParameters decodes only the camera parameters into out.
// out is written only when decoding succeeds.
func DecodeParameters(data []byte, out *Parameters) error {
	table, err := Decode(data)
	if err != nil {
		return err
	}
	*out = table.Parameters
	return nil
}

// decodeLegacy decodes a version 13 table: a flat float array whose
// first slot overlays the header.
func decodeLegacy(data []byte) (*Table, error) {
	window := padTo(data, parametersEnd)

	table := &Table{
		Version:   MinSupportedVersion,
		Legacy:    true,
		Truncated: len(data) < parametersEnd,
	}

	if err := readLE(window[:LegacyFloatCount*4], &table.LegacyValues); err != nil {
		return nil, fmt.Errorf("failed to read legacy values: %w", err)
	}

	if err := readLE(window[HeaderSize:parametersEnd], &table.Parameters); err != nil {
		return nil, fmt.Errorf("failed to read parameters: %w", err)
	}

	table.Tester = testerHeader(data)

	return table, nil
}

// decodeVersioned decodes a version 14+ table. At most VersionedSize bytes,
// less the leading unique number, are taken from the table; the remainder of
// the versioned structure stays zero.
func decodeVersioned(data []byte, version int) (*Table, error) {
	n := min(len(data), VersionedSize-4)
	window := padTo(data[:n], parametersEnd)

	table := &Table{
		Version:   version,
		Truncated: n < parametersEnd,
	}

	if err := readLE(window[HeaderSize:parametersEnd], &table.Parameters); err != nil {
		return nil, fmt.Errorf("failed to read parameters: %w", err)
	}

	table.Tester = testerHeader(data)

	if len(data) >= TesterDataEnd {
		var thermal struct {
			Temperature TemperatureData
			Loop        ThermalLoopParams
		}
		if err := readLE(data[TesterDataOffset:TesterDataEnd], &thermal); err != nil {
			return nil, fmt.Errorf("failed to read tester data: %w", err)
		}
		table.Tester.TemperatureData = thermal.Temperature
		table.Tester.ThermalLoopParams = thermal.Loop
		table.HasThermal = true
	}

	return table, nil
}

// testerHeader copies the table header into a tester record.
func testerHeader(data []byte) TesterData {
	return TesterData{
		TableValidation: int16(binary.LittleEndian.Uint16(data[0:2])),
		TableVersion:    int16(binary.LittleEndian.Uint16(data[2:4])),
	}
}

// padTo returns data zero-extended to at least size bytes.
func padTo(data []byte, size int) []byte {
	if len(data) >= size {
		return data
	}
	buf := make([]byte, size)
	copy(buf, data)
	return buf
}

func readLE(data []byte, v any) error {
	return binary.Read(bytes.NewReader(data), binary.LittleEndian, v)
}
