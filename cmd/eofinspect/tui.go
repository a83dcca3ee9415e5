package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/malik672/EOF-Parser/eof"
)

const (
	listWidth    = 20
	dumpRowBytes = 16
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	paneStyle = lipgloss.NewStyle().
			Width(listWidth).
			PaddingRight(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type section int

const (
	sectionHeader section = iota
	sectionTypes
	sectionCode
	sectionContainer
	sectionData
	sectionCount
)

var sectionNames = [sectionCount]string{"Header", "Types", "Code", "Container", "Data"}

type browserModel struct {
	err       error
	container *eof.Container
	filename  string
	status    string
	viewport  viewport.Model
	search    textinput.Model
	selected  section
	searching bool
	ready     bool
}

type loadedMsg struct {
	err       error
	container *eof.Container
}

func newBrowserModel(filename string) *browserModel {
	ti := textinput.New()
	ti.Prompt = "find hex: "
	ti.Placeholder = "60 00"
	ti.Width = 32

	return &browserModel{
		filename: filename,
		search:   ti,
		viewport: viewport.New(80, 20),
	}
}

func (m *browserModel) Init() tea.Cmd {
	return m.load
}

func (m *browserModel) load() tea.Msg {
	c, err := eof.DecodeFile(m.filename)
	return loadedMsg{container: c, err: err}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = max(msg.Width-listWidth-2, 20)
		m.viewport.Height = max(msg.Height-5, 3)
		m.ready = true
		m.refresh()
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.container = msg.container
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refresh()
			}
			return m, nil
		case "down", "j":
			if m.selected < sectionCount-1 {
				m.selected++
				m.refresh()
			}
			return m, nil
		case "/":
			if m.container != nil && m.sectionBytes() != nil {
				m.searching = true
				m.search.SetValue("")
				return m, m.search.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *browserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		m.find(m.search.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// find scrolls the dump to the first occurrence of a hex pattern.
func (m *browserModel) find(pattern string) {
	needle, err := parseHex(pattern)
	if err != nil || len(needle) == 0 {
		m.status = fmt.Sprintf("bad pattern %q", pattern)
		return
	}
	idx := bytes.Index(m.sectionBytes(), needle)
	if idx < 0 {
		m.status = fmt.Sprintf("%x not found", needle)
		return
	}
	m.viewport.SetYOffset(idx / dumpRowBytes)
	m.status = fmt.Sprintf("%x at offset %#x", needle, idx)
}

// sectionBytes returns the raw bytes of the selected section, or nil when
// the selection is not a raw section.
func (m *browserModel) sectionBytes() []byte {
	return m.bytesOf(m.selected)
}

func (m *browserModel) bytesOf(s section) []byte {
	switch s {
	case sectionCode:
		return m.container.Body.Code
	case sectionContainer:
		return m.container.Body.Container
	case sectionData:
		return m.container.Body.Data
	}
	return nil
}

func (m *browserModel) refresh() {
	m.status = ""
	if m.container == nil {
		return
	}
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

func (m *browserModel) content() string {
	c := m.container
	switch m.selected {
	case sectionHeader:
		var b strings.Builder
		if err := renderText(&b, c, palette{}); err != nil {
			return err.Error()
		}
		return b.String()
	case sectionTypes:
		return typesTable(c.Body.Types)
	default:
		data := m.sectionBytes()
		if len(data) == 0 {
			return "(empty)"
		}
		return hex.Dump(data)
	}
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.container == nil || !m.ready {
		return "Loading container..."
	}

	var list strings.Builder
	for i, name := range sectionNames {
		line := fmt.Sprintf("%-10s", name)
		if s := section(i); s >= sectionCode {
			line = fmt.Sprintf("%-10s%5d", name, len(m.bytesOf(s)))
		}
		if section(i) == m.selected {
			list.WriteString(selectedStyle.Render("> " + line))
		} else {
			list.WriteString("  " + line)
		}
		list.WriteByte('\n')
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("EOF Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, paneStyle.Render(list.String()), m.viewport.View()))
	b.WriteString("\n")

	switch {
	case m.searching:
		b.WriteString(m.search.View())
	case m.status != "":
		b.WriteString(m.status)
	default:
		b.WriteString(helpStyle.Render("↑/↓ section • pgup/pgdn scroll • / find • q quit"))
	}

	return b.String()
}

func tuiCmd(s *settings) *cli.Command {
	return &cli.Command{
		Name:      "tui",
		Usage:     "Browse a container interactively",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cli.Exit("error: tui takes exactly one <file> argument", 2)
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return cli.Exit("error: tui needs a terminal on stdout", 1)
			}
			s.logger.Debug("starting browser")

			p := tea.NewProgram(newBrowserModel(cmd.Args().First()), tea.WithAltScreen(), tea.WithContext(ctx))
			_, err := p.Run()
			return err
		},
	}
}
