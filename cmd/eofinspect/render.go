package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"golang.org/x/term"

	"github.com/malik672/EOF-Parser/eof"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// palette applies lipgloss styles only when color output is enabled.
type palette struct {
	color bool
}

func (p palette) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// wantColor reports whether output to w should be colored. An explicit
// config setting wins over terminal detection.
func wantColor(cfg Config, w io.Writer) bool {
	if cfg.Color != nil {
		return *cfg.Color
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type headerView struct {
	Magic                string `json:"magic"`
	Version              uint8  `json:"version"`
	KindType             uint8  `json:"kind_type"`
	TypeSize             uint16 `json:"type_size"`
	KindCode             uint8  `json:"kind_code"`
	NumCodeSections      uint16 `json:"num_code_sections"`
	CodeSize             uint16 `json:"code_size"`
	KindContainer        uint8  `json:"kind_container"`
	NumContainerSections uint16 `json:"num_container_sections"`
	ContainerSize        uint8  `json:"container_size"`
	KindData             uint8  `json:"kind_data"`
	DataSize             uint16 `json:"data_size"`
	Terminator           uint8  `json:"terminator"`
}

type typeView struct {
	Inputs         uint8  `json:"inputs"`
	Outputs        uint8  `json:"outputs"`
	MaxStackHeight uint16 `json:"max_stack_height"`
}

type containerView struct {
	Header          headerView `json:"header"`
	Types           []typeView `json:"types"`
	Inputs          uint8      `json:"inputs"`
	Outputs         uint8      `json:"outputs"`
	MaxStackHeight  uint16     `json:"max_stack_height"`
	Code            string     `json:"code"`
	Container       string     `json:"container"`
	Data            string     `json:"data"`
	Size            int        `json:"size"`
	Valid           bool       `json:"valid"`
	ValidationError string     `json:"validation_error,omitempty"`
}

func newContainerView(c *eof.Container) containerView {
	h := c.Header
	v := containerView{
		Header: headerView{
			Magic:                hex.EncodeToString(h.Magic[:]),
			Version:              h.Version,
			KindType:             h.KindType,
			TypeSize:             h.TypeSize,
			KindCode:             h.KindCode,
			NumCodeSections:      h.NumCodeSections,
			CodeSize:             h.CodeSize,
			KindContainer:        h.KindContainer,
			NumContainerSections: h.NumContainerSections,
			ContainerSize:        h.ContainerSize,
			KindData:             h.KindData,
			DataSize:             h.DataSize,
			Terminator:           h.Terminator,
		},
		Types:          make([]typeView, len(c.Body.Types)),
		Inputs:         c.Body.Inputs,
		Outputs:        c.Body.Outputs,
		MaxStackHeight: c.Body.MaxStackHeight,
		Code:           hex.EncodeToString(c.Body.Code),
		Container:      hex.EncodeToString(c.Body.Container),
		Data:           hex.EncodeToString(c.Body.Data),
		Size:           c.Size(),
		Valid:          true,
	}
	for i, tm := range c.Body.Types {
		v.Types[i] = typeView(tm)
	}
	if err := c.Validate(); err != nil {
		v.Valid = false
		v.ValidationError = err.Error()
	}
	return v
}

func renderJSON(w io.Writer, c *eof.Container) error {
	out, err := json.MarshalIndent(newContainerView(c), "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

func renderText(w io.Writer, c *eof.Container, p palette) error {
	var b strings.Builder

	field := func(name string, value any) {
		fmt.Fprintf(&b, "  %s %v\n", p.render(labelStyle, fmt.Sprintf("%-24s", name+":")), value)
	}

	h := c.Header
	b.WriteString(p.render(headingStyle, "Header"))
	b.WriteByte('\n')
	field("magic", fmt.Sprintf("%#x", h.Magic[:]))
	field("version", h.Version)
	field("kind_type", fmt.Sprintf("%#02x", h.KindType))
	field("type_size", h.TypeSize)
	field("kind_code", fmt.Sprintf("%#02x", h.KindCode))
	field("num_code_sections", h.NumCodeSections)
	field("code_size", h.CodeSize)
	field("kind_container", fmt.Sprintf("%#02x", h.KindContainer))
	field("num_container_sections", h.NumContainerSections)
	field("container_size", h.ContainerSize)
	field("kind_data", fmt.Sprintf("%#02x", h.KindData))
	field("data_size", h.DataSize)
	field("terminator", fmt.Sprintf("%#02x", h.Terminator))

	b.WriteByte('\n')
	b.WriteString(p.render(headingStyle, fmt.Sprintf("Types (%d)", len(c.Body.Types))))
	b.WriteByte('\n')
	b.WriteString(typesTable(c.Body.Types))

	b.WriteByte('\n')
	b.WriteString(p.render(headingStyle, "Sections"))
	b.WriteByte('\n')
	field("code", sectionSummary(c.Body.Code))
	field("container", sectionSummary(c.Body.Container))
	field("data", sectionSummary(c.Body.Data))
	field("total size", c.Size())

	b.WriteByte('\n')
	if err := c.Validate(); err != nil {
		b.WriteString(p.render(errorStyle, "invalid: "+err.Error()))
	} else {
		b.WriteString(p.render(okStyle, "valid"))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func typesTable(types []eof.TypeMetadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %5s  %6s  %7s  %16s\n", "index", "inputs", "outputs", "max_stack_height")
	for i, tm := range types {
		fmt.Fprintf(&b, "  %5d  %6d  %7d  %16d\n", i, tm.Inputs, tm.Outputs, tm.MaxStackHeight)
	}
	return b.String()
}

func sectionSummary(data []byte) string {
	const preview = 16
	if len(data) == 0 {
		return "0 bytes"
	}
	if len(data) <= preview {
		return fmt.Sprintf("%d bytes %x", len(data), data)
	}
	return fmt.Sprintf("%d bytes %x...", len(data), data[:preview])
}
