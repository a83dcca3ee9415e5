// Package eof decodes EOF (EVM Object Format) containers.
//
// A container is a fixed 19-byte header followed by a types table and three
// raw sections:
//
//	magic(2) version(1)
//	kind_type(1) type_size(2)
//	kind_code(1) num_code_sections(2) code_size(2)
//	kind_container(1) num_container_sections(2) container_size(1)
//	kind_data(1) data_size(2)
//	terminator(1)
//	types[type_size] code[code_size] container[container_size] data[data_size]
//
// Multi-byte integers are little-endian.
//
// # Decoding
//
// Decode from memory:
//
//	c, err := eof.DecodeBytes(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(c.Body.Code), c.Body.MaxStackHeight)
//
// Or from any sequential source:
//
//	c, err := eof.DecodeFile("contract.eof")
//	c, err := eof.Decode(eof.NewSource(conn))
//
// Decode checks the magic, the version, the code section count, the types
// table alignment and that the table is non-empty. Everything else in the
// header is taken as declared.
//
// # Validation
//
// Validate adds the cross-checks the decoder leaves out:
//
//	if err := c.Validate(); err != nil {
//	    log.Printf("malformed container: %v", err)
//	}
//
// # Errors
//
// Failures are *errors.Error values. Match them by kind:
//
//	if errors.Is(err, eof.ErrInvalidMagic) { ... }
//	switch eof.KindOf(err) { ... }
package eof
