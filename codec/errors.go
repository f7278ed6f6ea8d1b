package codec

import "errors"

var (
	// ErrBadMagic is returned when the input does not start with a bitvec frame.
	ErrBadMagic = errors.New("codec: bad magic")

	// ErrUnsupportedVersion is returned for frames written by a newer format version.
	ErrUnsupportedVersion = errors.New("codec: unsupported version")

	// ErrChecksum is returned when the stored CRC32C does not match the frame.
	ErrChecksum = errors.New("codec: checksum mismatch")

	// ErrCorrupt is returned for structurally invalid frames.
	ErrCorrupt = errors.New("codec: corrupt frame")
)
