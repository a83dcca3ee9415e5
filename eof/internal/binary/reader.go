package binary

import (
	"encoding/binary"
	"io"
)

// Reader wraps an io.Reader with position tracking and the fixed-width
// little-endian reads the EOF header uses.
type Reader struct {
	r   io.Reader
	pos int
	buf [2]byte
}

// NewReader creates a new Reader wrapping the given io.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, pos: 0}
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int {
	return r.pos
}

// ReadExact reads exactly n bytes. A zero-length read returns an empty slice
// without touching the underlying reader. Short reads return io.EOF when
// nothing was read and io.ErrUnexpectedEOF otherwise.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	read, err := io.ReadFull(r.r, buf)
	r.pos += read
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	read, err := io.ReadFull(r.r, r.buf[:1])
	r.pos += read
	if err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// ReadU8 reads a single unsigned byte.
func (r *Reader) ReadU8() (uint8, error) {
	return r.ReadByte()
}

// ReadU16LE reads a little-endian uint16 (fixed 2 bytes).
func (r *Reader) ReadU16LE() (uint16, error) {
	read, err := io.ReadFull(r.r, r.buf[:2])
	r.pos += read
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.buf[:2]), nil
}
