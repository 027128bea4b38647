package guid

import "errors"

var (
	// ErrInvalidFormat indicates that the GUID string format is invalid
	ErrInvalidFormat = errors.New("guid: invalid GUID format")

	// ErrInvalidLength indicates that a byte slice is too short to hold a GUID
	ErrInvalidLength = errors.New("guid: invalid GUID length (expected 16 bytes)")
)
