package eof_test

import (
	"encoding/binary"

	"github.com/malik672/EOF-Parser/eof"
)

// encodeHeader lays out h in wire order. Only tests need an encoder.
func encodeHeader(h eof.Header) []byte {
	b := make([]byte, 0, eof.HeaderSize)
	b = append(b, h.Magic[:]...)
	b = append(b, h.Version, h.KindType)
	b = binary.LittleEndian.AppendUint16(b, h.TypeSize)
	b = append(b, h.KindCode)
	b = binary.LittleEndian.AppendUint16(b, h.NumCodeSections)
	b = binary.LittleEndian.AppendUint16(b, h.CodeSize)
	b = append(b, h.KindContainer)
	b = binary.LittleEndian.AppendUint16(b, h.NumContainerSections)
	b = append(b, h.ContainerSize, h.KindData)
	b = binary.LittleEndian.AppendUint16(b, h.DataSize)
	b = append(b, h.Terminator)
	return b
}

func encodeTypes(types []eof.TypeMetadata) []byte {
	b := make([]byte, 0, len(types)*eof.TypeMetadataSize)
	for _, tm := range types {
		b = append(b, tm.Inputs, tm.Outputs)
		b = binary.LittleEndian.AppendUint16(b, tm.MaxStackHeight)
	}
	return b
}

// fixture describes a container; build derives the header sizes from the
// contents unless the header fields were set explicitly.
type fixture struct {
	header    eof.Header
	types     []eof.TypeMetadata
	code      []byte
	container []byte
	data      []byte
}

func validFixture() fixture {
	return fixture{
		types: []eof.TypeMetadata{{Inputs: 0, Outputs: 0x80, MaxStackHeight: 2}},
		code:  []byte{0x60, 0x01, 0x60, 0x02, 0x00},
	}
}

func (f fixture) build() []byte {
	h := f.header
	if h.Magic == [2]byte{} {
		h.Magic = eof.Magic()
	}
	if h.Version == 0 {
		h.Version = eof.Version
	}
	if h.KindType == 0 {
		h.KindType = eof.KindType
	}
	if h.KindCode == 0 {
		h.KindCode = eof.KindCode
	}
	if h.KindContainer == 0 {
		h.KindContainer = eof.KindContainer
	}
	if h.KindData == 0 {
		h.KindData = eof.KindData
	}
	if h.TypeSize == 0 {
		h.TypeSize = uint16(len(f.types) * eof.TypeMetadataSize)
	}
	if h.NumCodeSections == 0 {
		h.NumCodeSections = uint16(len(f.types))
	}
	if h.CodeSize == 0 {
		h.CodeSize = uint16(len(f.code))
	}
	if h.ContainerSize == 0 {
		h.ContainerSize = uint8(len(f.container))
	}
	if h.NumContainerSections == 0 && len(f.container) > 0 {
		h.NumContainerSections = 1
	}
	if h.DataSize == 0 {
		h.DataSize = uint16(len(f.data))
	}

	out := encodeHeader(h)
	out = append(out, encodeTypes(f.types)...)
	out = append(out, f.code...)
	out = append(out, f.container...)
	out = append(out, f.data...)
	return out
}

// rawSource is a Source that does not report its position.
type rawSource struct {
	data []byte
}

func (s *rawSource) ReadExact(n int) ([]byte, error) {
	if n > len(s.data) {
		s.data = nil
		return nil, errShort
	}
	out := make([]byte, n)
	copy(out, s.data[:n])
	s.data = s.data[n:]
	return out, nil
}

func (s *rawSource) ReadU8() (uint8, error) {
	b, err := s.ReadExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *rawSource) ReadU16LE() (uint16, error) {
	b, err := s.ReadExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

type shortReadError struct{}

func (shortReadError) Error() string { return "short read" }

var errShort error = shortReadError{}

// Header field offsets.
const (
	offVersion       = 2
	offKindType      = 3
	offTypeSize      = 4
	offNumCode       = 7
	offCodeSize      = 9
	offNumContainers = 12
	offContainerSize = 14
	offDataSize      = 16
	offTerminator    = 18
)

func patchU16(b []byte, off int, v uint16) []byte {
	binary.LittleEndian.PutUint16(b[off:], v)
	return b
}
