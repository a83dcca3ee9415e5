package eof

import (
	"github.com/malik672/EOF-Parser/errors"
)

// Decode errors. Match with errors.Is; each matches any error of its kind
// regardless of where it was produced.
var (
	ErrInvalidMagic               = &errors.Error{Kind: errors.KindInvalidMagic}
	ErrInvalidVersion             = &errors.Error{Kind: errors.KindInvalidVersion}
	ErrInvalidCodeSectionCount    = &errors.Error{Kind: errors.KindInvalidCodeSectionCount}
	ErrInvalidTypeSectionSize     = &errors.Error{Kind: errors.KindInvalidTypeSectionSize}
	ErrInvalidZeroSectionMetadata = &errors.Error{Kind: errors.KindInvalidZeroSectionMetadata}
	ErrParse                      = &errors.Error{Kind: errors.KindParse}
	ErrIO                         = &errors.Error{Kind: errors.KindIO}
)

// KindOf reports the error kind of a decode or validation failure.
func KindOf(err error) errors.Kind {
	return errors.KindOf(err)
}
