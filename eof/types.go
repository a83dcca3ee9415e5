package eof

// Header is the fixed-width container header.
type Header struct {
	Magic                [2]byte
	Version              uint8
	KindType             uint8
	TypeSize             uint16
	KindCode             uint8
	NumCodeSections      uint16
	CodeSize             uint16
	KindContainer        uint8
	NumContainerSections uint16
	ContainerSize        uint8
	KindData             uint8
	DataSize             uint16
	Terminator           uint8
}

// BodySize returns the number of bytes the header declares after itself.
func (h Header) BodySize() int {
	return int(h.TypeSize) + int(h.CodeSize) + int(h.ContainerSize) + int(h.DataSize)
}

// TypeMetadata is one row of the types table. Row i describes code section i.
type TypeMetadata struct {
	Inputs         uint8
	Outputs        uint8
	MaxStackHeight uint16
}

// Body holds the decoded types table and the raw sections.
// Inputs, Outputs and MaxStackHeight are copies of Types[0].
type Body struct {
	Types          []TypeMetadata
	Inputs         uint8
	Outputs        uint8
	MaxStackHeight uint16
	Code           []byte
	Container      []byte
	Data           []byte
}

// Container is a decoded EOF container.
type Container struct {
	Header Header
	Body   Body
}

// Size returns the total encoded length of the container.
func (c *Container) Size() int {
	return HeaderSize + c.Header.BodySize()
}
