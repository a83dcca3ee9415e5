package eof

import (
	"fmt"

	"github.com/malik672/EOF-Parser/errors"
)

// Validate runs the structural cross-checks that Decode leaves out: section
// kind tags, the terminator, table and section counts, stack height bounds
// and section lengths. It returns the first violation found.
func (c *Container) Validate() error {
	h := &c.Header

	kinds := []struct {
		field string
		got   uint8
		want  byte
	}{
		{"kind_type", h.KindType, KindType},
		{"kind_code", h.KindCode, KindCode},
		{"kind_container", h.KindContainer, KindContainer},
		{"kind_data", h.KindData, KindData},
	}
	for _, k := range kinds {
		if k.got != k.want {
			return errors.New(errors.PhaseValidate, errors.KindInvalidSectionKind).
				Field(k.field).
				Value(k.got).
				Detail("got %#02x, want %#02x", k.got, k.want).
				Build()
		}
	}

	if h.Terminator != Terminator {
		return errors.New(errors.PhaseValidate, errors.KindInvalidTerminator).
			Field("terminator").
			At(HeaderSize-1).
			Value(h.Terminator).
			Detail("got %#02x, want %#02x", h.Terminator, Terminator).
			Build()
	}

	if len(c.Body.Types) != int(h.NumCodeSections) {
		return errors.Mismatch(errors.KindTypeCountMismatch, "num_code_sections",
			h.NumCodeSections, len(c.Body.Types))
	}

	if (h.NumContainerSections == 0) != (h.ContainerSize == 0) {
		return errors.New(errors.PhaseValidate, errors.KindContainerCountMismatch).
			Field("num_container_sections").
			Value(h.NumContainerSections).
			Detail("%d container sections with container_size %d", h.NumContainerSections, h.ContainerSize).
			Build()
	}

	for i, tm := range c.Body.Types {
		if tm.MaxStackHeight > MaxStackHeight {
			return errors.New(errors.PhaseValidate, errors.KindStackHeightOverflow).
				Field(fmt.Sprintf("types[%d].max_stack_height", i)).
				Value(tm.MaxStackHeight).
				Detail("%d exceeds %d", tm.MaxStackHeight, MaxStackHeight).
				Build()
		}
	}

	sizes := []struct {
		field    string
		declared int
		actual   int
	}{
		{"code_size", int(h.CodeSize), len(c.Body.Code)},
		{"container_size", int(h.ContainerSize), len(c.Body.Container)},
		{"data_size", int(h.DataSize), len(c.Body.Data)},
	}
	for _, s := range sizes {
		if s.declared != s.actual {
			return errors.Mismatch(errors.KindSizeMismatch, s.field, s.declared, s.actual)
		}
	}

	return nil
}
