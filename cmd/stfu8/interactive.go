package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/stfu8"
	"github.com/wippyai/stfu8/internal/escape"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	tokenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modeKind int

const (
	modeEncodeU8Text modeKind = iota
	modeEncodeU8Hex
	modeEncodeU16Text
	modeEncodeU16Hex
	modeDecodeU8
	modeDecodeU16
)

type modeInfo struct {
	name string
	desc string
	kind modeKind
}

var modes = []modeInfo{
	{"encode u8 text", "type text, see it as STFU-8", modeEncodeU8Text},
	{"encode u8 hex", "hex bytes like de ad be ef", modeEncodeU8Hex},
	{"encode u16 text", "type text, encoded as 16-bit units", modeEncodeU16Text},
	{"encode u16 hex", "hex units like dead 0041", modeEncodeU16Hex},
	{"decode u8", "STFU-8 text to bytes", modeDecodeU8},
	{"decode u16", "STFU-8 text to 16-bit units", modeDecodeU16},
}

type modelState int

const (
	stateSelectMode modelState = iota
	stateInspect
)

type inspectorModel struct {
	input    textinput.Model
	selected int
	state    modelState
}

func newInspectorModel() *inspectorModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = 60
	return &inspectorModel{input: ti, state: stateSelectMode}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateSelectMode {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectMode && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectMode && m.selected < len(modes)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectMode {
				m.state = stateInspect
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}

		case "esc":
			if m.state == stateInspect {
				m.state = stateSelectMode
				m.input.Blur()
			}
		}
	}

	if m.state == stateInspect {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("STFU-8 Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectMode:
		b.WriteString("Select a mode:\n\n")
		for i, mode := range modes {
			line := modeStyle.Render(mode.name) + "  " + helpStyle.Render(mode.desc)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + mode.name))
				b.WriteString("  " + helpStyle.Render(mode.desc))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • q quit"))

	case stateInspect:
		mode := modes[m.selected]
		b.WriteString(modeStyle.Render(mode.name))
		b.WriteString("  " + helpStyle.Render(mode.desc))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.evaluate(mode.kind))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • ctrl+c quit"))
	}

	return b.String()
}

// evaluate renders the live result panel for the current input.
func (m *inspectorModel) evaluate(kind modeKind) string {
	value := m.input.Value()
	if value == "" {
		return helpStyle.Render("(waiting for input)")
	}

	switch kind {
	case modeEncodeU8Text:
		return renderEncodedU8([]byte(value))

	case modeEncodeU8Hex:
		raw, err := parseHexBytes(value)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		return renderEncodedU8(raw)

	case modeEncodeU16Text:
		return renderEncodedU16(utf16.Encode([]rune(value)))

	case modeEncodeU16Hex:
		units, err := parseHexUnits(value)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		return renderEncodedU16(units)

	case modeDecodeU8:
		var b strings.Builder
		b.WriteString(tokenBreakdown(value))
		raw, err := stfu8.DecodeU8(value)
		if err != nil {
			b.WriteString(errorStyle.Render(err.Error()))
			return b.String()
		}
		b.WriteString(resultStyle.Render(fmt.Sprintf("bytes  % X", raw)))
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(fmt.Sprintf("text   %s", strconv.Quote(string(raw)))))
		return b.String()

	case modeDecodeU16:
		var b strings.Builder
		b.WriteString(tokenBreakdown(value))
		units, err := stfu8.DecodeU16(value)
		if err != nil {
			b.WriteString(errorStyle.Render(err.Error()))
			return b.String()
		}
		b.WriteString(resultStyle.Render(fmt.Sprintf("units  %04X", units)))
		return b.String()
	}
	return ""
}

func renderEncodedU8(raw []byte) string {
	var b strings.Builder
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d bytes: % X", len(raw), raw)))
	b.WriteString("\n")
	b.WriteString(resultStyle.Render(stfu8.EncodeU8(raw)))
	b.WriteString("\n")
	b.WriteString(tokenStyle.Render("pretty: " + stfu8.EncodeU8Pretty(raw)))
	return b.String()
}

func renderEncodedU16(units []uint16) string {
	var b strings.Builder
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d units: %04X", len(units), units)))
	b.WriteString("\n")
	b.WriteString(resultStyle.Render(stfu8.EncodeU16(units)))
	b.WriteString("\n")
	b.WriteString(tokenStyle.Render("pretty: " + stfu8.EncodeU16Pretty(units)))
	return b.String()
}

// tokenBreakdown lists the escape tokens of encoded text, one per line.
func tokenBreakdown(text string) string {
	const maxRows = 12

	var b strings.Builder
	data := []byte(text)
	rows := 0
	for i := 0; i < len(data); {
		tok, size, err := escape.Next(data[i:], true)
		if err != nil {
			break
		}
		if rows == maxRows {
			b.WriteString(helpStyle.Render("  …"))
			b.WriteString("\n")
			break
		}
		detail := fmt.Sprintf("U+%04X", tok.Value)
		if tok.Kind != escape.Literal && !escape.ValidScalar(tok.Value) {
			detail = fmt.Sprintf("element 0x%X", tok.Value)
		}
		b.WriteString(fmt.Sprintf("  %-12s %-14s %s\n",
			strconv.Quote(string(data[i:i+size])),
			tokenStyle.Render(tok.Kind.String()),
			detail))
		i += size
		rows++
	}
	return b.String()
}

func parseHexBytes(s string) ([]byte, error) {
	joined := strings.Join(strings.Fields(s), "")
	raw, err := hex.DecodeString(joined)
	if err != nil {
		return nil, fmt.Errorf("not hex bytes: %v", err)
	}
	return raw, nil
}

func parseHexUnits(s string) ([]uint16, error) {
	fields := strings.Fields(s)
	units := make([]uint16, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("not a 16-bit hex unit %q: %v", f, err)
		}
		units = append(units, uint16(v))
	}
	return units, nil
}

func runInteractive() error {
	p := tea.NewProgram(newInspectorModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
