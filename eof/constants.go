package eof

var magic = [2]byte{0xEF, 0x00}

// Magic returns the two bytes every EOF container starts with.
func Magic() [2]byte {
	return magic
}

const (
	// Version is the only supported container version.
	Version uint8 = 0x01

	// HeaderSize is the encoded width of the fixed header in bytes.
	HeaderSize = 19

	// TypeMetadataSize is the encoded width of one types-table row.
	TypeMetadataSize = 4
)

// Section kind tags as they appear in the header.
const (
	KindType      byte = 0x01 // types table
	KindCode      byte = 0x02 // code sections
	KindContainer byte = 0x03 // nested containers
	KindData      byte = 0x04 // data section

	Terminator byte = 0x00 // end of header
)

// Format limits.
const (
	// MaxCodeSections bounds NumCodeSections (inclusive).
	MaxCodeSections = 1024

	// MaxStackHeight bounds a code section's declared operand stack height.
	MaxStackHeight = 1023
)
