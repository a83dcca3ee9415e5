package eof

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/malik672/EOF-Parser/errors"
)

// Decode reads one EOF container from src. Decoding is all-or-nothing: the
// first failure aborts and is returned unchanged, and src must not be reused.
func Decode(src Source) (*Container, error) {
	d := &decoder{src: src}
	c, err := d.decode()
	if err != nil {
		Logger().Debug("eof decode failed", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// DecodeBytes decodes a container held in memory. Trailing bytes after the
// declared sections are ignored.
func DecodeBytes(data []byte) (*Container, error) {
	return Decode(NewSource(bytes.NewReader(data)))
}

// DecodeBytesValidate decodes a container and runs the structural checks.
func DecodeBytesValidate(data []byte) (*Container, error) {
	c, err := DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// DecodeReader decodes a container from r.
func DecodeReader(r io.Reader) (*Container, error) {
	return Decode(NewSource(r))
}

// DecodeFile decodes the container stored at path. The file is closed on
// every path out of the call.
func DecodeFile(path string) (c *Container, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			c, err = nil, fmt.Errorf("close container: %w", closeErr)
		}
	}()

	return DecodeReader(bufio.NewReader(f))
}

type decoder struct {
	src Source
}

func (d *decoder) decode() (*Container, error) {
	h, err := d.header()
	if err != nil {
		return nil, err
	}
	Logger().Debug("eof header decoded",
		zap.Uint16("type_size", h.TypeSize),
		zap.Uint16("num_code_sections", h.NumCodeSections),
		zap.Uint16("code_size", h.CodeSize),
		zap.Uint8("container_size", h.ContainerSize),
		zap.Uint16("data_size", h.DataSize))

	types, err := d.types(&h)
	if err != nil {
		return nil, err
	}

	code, err := d.section(errors.PhaseCode, int(h.CodeSize))
	if err != nil {
		return nil, err
	}
	container, err := d.section(errors.PhaseContainer, int(h.ContainerSize))
	if err != nil {
		return nil, err
	}
	data, err := d.section(errors.PhaseData, int(h.DataSize))
	if err != nil {
		return nil, err
	}

	first := types[0]
	return &Container{
		Header: h,
		Body: Body{
			Types:          types,
			Inputs:         first.Inputs,
			Outputs:        first.Outputs,
			MaxStackHeight: first.MaxStackHeight,
			Code:           code,
			Container:      container,
			Data:           data,
		},
	}, nil
}

// header reads the fixed-width header, checking magic, version and the code
// section count in that order. The remaining fields are taken as-is.
func (d *decoder) header() (Header, error) {
	var h Header

	raw, err := d.src.ReadExact(len(magic))
	if err != nil {
		return h, d.ioError(errors.PhaseHeader, "magic", err)
	}
	copy(h.Magic[:], raw)
	if h.Magic != magic {
		return h, errors.New(errors.PhaseHeader, errors.KindInvalidMagic).
			Field("magic").
			At(0).
			Value(h.Magic).
			Detail("got %#x, want %#x", h.Magic[:], magic[:]).
			Build()
	}

	if h.Version, err = d.u8(errors.PhaseHeader, "version"); err != nil {
		return h, err
	}
	if h.Version != Version {
		return h, errors.New(errors.PhaseHeader, errors.KindInvalidVersion).
			Field("version").
			At(2).
			Value(h.Version).
			Detail("got %d, want %d", h.Version, Version).
			Build()
	}

	if h.KindType, err = d.u8(errors.PhaseHeader, "kind_type"); err != nil {
		return h, err
	}
	if h.TypeSize, err = d.u16(errors.PhaseHeader, "type_size"); err != nil {
		return h, err
	}
	if h.KindCode, err = d.u8(errors.PhaseHeader, "kind_code"); err != nil {
		return h, err
	}
	if h.NumCodeSections, err = d.u16(errors.PhaseHeader, "num_code_sections"); err != nil {
		return h, err
	}
	if h.NumCodeSections == 0 || h.NumCodeSections > MaxCodeSections {
		return h, errors.New(errors.PhaseHeader, errors.KindInvalidCodeSectionCount).
			Field("num_code_sections").
			At(7).
			Value(h.NumCodeSections).
			Detail("got %d, want 1..%d", h.NumCodeSections, MaxCodeSections).
			Build()
	}

	if h.CodeSize, err = d.u16(errors.PhaseHeader, "code_size"); err != nil {
		return h, err
	}
	if h.KindContainer, err = d.u8(errors.PhaseHeader, "kind_container"); err != nil {
		return h, err
	}
	if h.NumContainerSections, err = d.u16(errors.PhaseHeader, "num_container_sections"); err != nil {
		return h, err
	}
	if h.ContainerSize, err = d.u8(errors.PhaseHeader, "container_size"); err != nil {
		return h, err
	}
	if h.KindData, err = d.u8(errors.PhaseHeader, "kind_data"); err != nil {
		return h, err
	}
	if h.DataSize, err = d.u16(errors.PhaseHeader, "data_size"); err != nil {
		return h, err
	}
	if h.Terminator, err = d.u8(errors.PhaseHeader, "terminator"); err != nil {
		return h, err
	}

	return h, nil
}

// types reads TypeSize bytes as 4-byte rows. A trailing remainder shorter
// than one row is detected when the loop reaches it.
func (d *decoder) types(h *Header) ([]TypeMetadata, error) {
	types := make([]TypeMetadata, 0, int(h.TypeSize)/TypeMetadataSize)
	remaining := int(h.TypeSize)

	for remaining > 0 {
		if remaining < TypeMetadataSize {
			b := errors.New(errors.PhaseTypes, errors.KindInvalidTypeSectionSize).
				Field("type_size").
				Value(h.TypeSize).
				Detail("%d trailing bytes after %d rows", remaining, len(types))
			if off, ok := d.offset(); ok {
				b.At(off)
			}
			return nil, b.Build()
		}

		var tm TypeMetadata
		var err error
		if tm.Inputs, err = d.u8(errors.PhaseTypes, "inputs"); err != nil {
			return nil, err
		}
		if tm.Outputs, err = d.u8(errors.PhaseTypes, "outputs"); err != nil {
			return nil, err
		}
		if tm.MaxStackHeight, err = d.u16(errors.PhaseTypes, "max_stack_height"); err != nil {
			return nil, err
		}
		types = append(types, tm)

		remaining -= TypeMetadataSize
	}

	if len(types) == 0 {
		return nil, errors.New(errors.PhaseTypes, errors.KindInvalidZeroSectionMetadata).
			Field("type_size").
			Value(h.TypeSize).
			Detail("no metadata for code section 0").
			Build()
	}

	return types, nil
}

// section reads one raw section of exactly size bytes.
func (d *decoder) section(phase errors.Phase, size int) ([]byte, error) {
	buf, err := d.src.ReadExact(size)
	if err != nil {
		return nil, d.ioError(phase, string(phase)+"_section", err)
	}
	return buf, nil
}

func (d *decoder) u8(phase errors.Phase, field string) (uint8, error) {
	v, err := d.src.ReadU8()
	if err != nil {
		return 0, d.ioError(phase, field, err)
	}
	return v, nil
}

func (d *decoder) u16(phase errors.Phase, field string) (uint16, error) {
	v, err := d.src.ReadU16LE()
	if err != nil {
		return 0, d.ioError(phase, field, err)
	}
	return v, nil
}

func (d *decoder) offset() (int, bool) {
	if p, ok := d.src.(positioner); ok {
		return p.Position(), true
	}
	return 0, false
}

func (d *decoder) ioError(phase errors.Phase, field string, cause error) error {
	e := errors.IO(phase, cause)
	e.Field = field
	if off, ok := d.offset(); ok {
		e.Offset, e.Positioned = off, true
	}
	return e
}
