package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates which part of the container was being processed
type Phase string

const (
	PhaseHeader    Phase = "header"    // fixed-width header
	PhaseTypes     Phase = "types"     // type metadata table
	PhaseCode      Phase = "code"      // code section bytes
	PhaseContainer Phase = "container" // container section bytes
	PhaseData      Phase = "data"      // data section bytes
	PhaseValidate  Phase = "validate"  // opt-in structural checks
	PhaseParse     Phase = "parse"     // generic decode failure
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidMagic               Kind = "invalid_magic"
	KindInvalidVersion             Kind = "invalid_version"
	KindInvalidCodeSectionCount    Kind = "invalid_code_section_count"
	KindInvalidTypeSectionSize     Kind = "invalid_type_section_size"
	KindInvalidZeroSectionMetadata Kind = "invalid_zero_section_metadata"
	KindParse                      Kind = "parse"
	KindIO                         Kind = "io"

	// Structural validation kinds.
	KindInvalidSectionKind     Kind = "invalid_section_kind"
	KindInvalidTerminator      Kind = "invalid_terminator"
	KindTypeCountMismatch      Kind = "type_count_mismatch"
	KindContainerCountMismatch Kind = "container_count_mismatch"
	KindStackHeightOverflow    Kind = "stack_height_overflow"
	KindSizeMismatch           Kind = "size_mismatch"
)

// Error is the structured error type returned by the decoder
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	Field      string
	Detail     string
	Offset     int
	Positioned bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.Field != "" {
		b.WriteString(" in ")
		b.WriteString(e.Field)
	}

	if e.Positioned {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without a Phase
// matches any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Field sets the header field or record name
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// At records the byte offset at which the failure was detected
func (b *Builder) At(offset int) *Builder {
	b.err.Offset = offset
	b.err.Positioned = true
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// IO wraps a failure reported by the byte source
func IO(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Detail: "read failed",
		Cause:  cause,
	}
}

// Parse creates a generic decode failure carrying a message
func Parse(msg string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindParse,
		Detail: msg,
	}
}

// Mismatch creates a validation error for a declared value that disagrees
// with what was found
func Mismatch(kind Kind, field string, declared, actual any) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   kind,
		Field:  field,
		Value:  actual,
		Detail: fmt.Sprintf("declared %v, found %v", declared, actual),
	}
}
