package eof

import (
	"io"

	"github.com/malik672/EOF-Parser/eof/internal/binary"
)

// Source is the sequential byte source the decoder consumes. Reads are
// strictly forward; a Source is owned by a single decode call.
type Source interface {
	// ReadExact reads exactly n bytes or fails.
	ReadExact(n int) ([]byte, error)
	// ReadU8 reads one byte.
	ReadU8() (uint8, error)
	// ReadU16LE reads a little-endian uint16.
	ReadU16LE() (uint16, error)
}

// positioner is implemented by sources that can report how many bytes they
// have consumed. Errors from such sources carry the offset.
type positioner interface {
	Position() int
}

// NewSource returns a Source reading from r.
func NewSource(r io.Reader) Source {
	return binary.NewReader(r)
}
