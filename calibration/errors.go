package calibration

import (
	"errors"
	"fmt"
)

var (
	// ErrShortBlob is returned when the table is too short to hold its header.
	ErrShortBlob = errors.New("calibration table too short")

	// ErrInvalidTag is returned when the validity tag does not match.
	ErrInvalidTag = errors.New("invalid calibration table tag")
)

// UnsupportedVersionError indicates a table older than MinSupportedVersion.
type UnsupportedVersionError struct {
	Version int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported calibration version %d: minimum is %d", e.Version, MinSupportedVersion)
}
