// Package errors provides structured error types for the EOF decoder.
//
// Errors are categorized by Phase (which part of the container was being
// processed) and Kind (what went wrong). The Error type carries the header
// field involved, the byte offset when the source reports one, the offending
// value and the underlying cause.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseHeader, errors.KindInvalidVersion).
//		Field("version").
//		At(2).
//		Value(uint8(2)).
//		Detail("want version 1").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.IO(errors.PhaseCode, cause)
//	err := errors.Parse("unexpected trailing bytes")
//
// Matching is by Kind, and by Phase when the target names one:
//
//	errors.Is(err, &errors.Error{Kind: errors.KindInvalidMagic})
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
