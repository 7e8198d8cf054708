package protocol

import "time"

// USB identification of the IVCAM (F200) depth camera and its monitor interface.
const (
	// VendorID is the USB vendor ID of the camera (Intel)
	VendorID = 0x8086

	// ProductID is the USB product ID of the F200 camera
	ProductID = 0x0A66

	// MonitorInterface is the USB interface number carrying the monitor endpoints
	MonitorInterface = 4

	// EndpointOut is the bulk OUT endpoint address for monitor requests
	EndpointOut = 0x01

	// EndpointIn is the bulk IN endpoint address for monitor responses
	EndpointIn = 0x81
)

// Envelope structure constants.
const (
	// MagicNumber is written after the length field of every request
	MagicNumber = 0xCDAB

	// LengthFieldSize is the size of the length prefix, plus the magic number.
	// The length field counts every byte after these four.
	LengthFieldSize = 4

	// HeaderSize is the fixed request header size in bytes:
	// LEN(2) + MAGIC(2) + OPCODE(4) + P1..P4(16)
	HeaderSize = 24

	// MaxBufferSize is the largest request or response transfer in bytes
	MaxBufferSize = 1024

	// StatusWordSize is the size of the op/status word that leads every response
	StatusWordSize = 4

	// NumParams is the number of 32-bit parameters carried by a request
	NumParams = 4
)

// Monitor command opcodes.
const (
	OpUpdateCalib         = 0xBC
	OpGetIRTemp           = 0x52
	OpGetMEMSTemp         = 0x0A
	OpHWReset             = 0x28
	OpGVD                 = 0x3B
	OpBIST                = 0xFF
	OpGoToDFU             = 0x80
	OpGetCalibrationTable = 0x3D
	OpDebugFormat         = 0x0B
	OpTimeStampEnable     = 0x0C
	OpGetPowerGearState   = 0xFF
	OpSetDefaultControls  = 0xA6
	OpGetDefaultControls  = 0xA7
	OpGetFWLastError      = 0x0E
	OpCheckI2cConnect     = 0x4A
	OpCheckRGBConnect     = 0x4B
	OpCheckDPTConnect     = 0x4C
)

// Timing constants for the monitor link.
const (
	// DefaultLockTimeout bounds the wait for exclusive access to the monitor endpoints
	DefaultLockTimeout = 3000 * time.Millisecond

	// DefaultTransferTimeout bounds each individual bulk transfer
	DefaultTransferTimeout = 1000 * time.Millisecond
)

// CalibrationBufferSize is the destination size used when reading the calibration table.
const CalibrationBufferSize = 1000
