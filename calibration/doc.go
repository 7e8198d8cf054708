// Package calibration decodes the factory calibration table stored on the IVCAM monitor.
//
// # Calibration Table Format
//
// The table is the payload of the GetCalibrationTable monitor command. It starts
// with a 4-byte header followed by a version dependent body:
//
//	[TAG(2)][VERSION(2)][BODY...]
//
// Header:
//
//	14 0A 01 04
//	  14 0A = validity tag (must match exactly)
//	  01 04 = version, one decimal digit per byte (14)
//
// Version 13 body: the whole table is read as 100 little-endian float32 values.
// Slot 0 overlays the header, the camera parameters start at slot 1.
//
// Version 14 and later:
//
//	[TAG(2)][VERSION(2)][PARAMETERS(448)][...][TESTER(104) at offset 516]
//
// Thermal tester data is present only when the table reaches offset 620.
// Tables older than version 13, or with a bad tag, are rejected.
//
// # Usage
//
// Decode a table read from the device:
//
//	table, err := calibration.Decode(payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Version: %d\n", table.Version)
//	fmt.Printf("IR focal length: %f\n", table.Parameters.Kc[0][0])
//
// Decode a raw transfer that still carries the 4-byte response status word:
//
//	table, err := calibration.DecodeTransfer(raw)
//
// # Error Handling
//
// Decode returns:
//   - ErrShortBlob when the header is missing
//   - ErrInvalidTag when the validity tag does not match
//   - *UnsupportedVersionError for versions below MinSupportedVersion
package calibration
