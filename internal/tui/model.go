package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/paramedit/internal/editor"
	"github.com/alexisbeaulieu97/paramedit/internal/logger"
	"github.com/alexisbeaulieu97/paramedit/internal/param"
)

const (
	defaultInputWidth = 40
	colorCharLimit    = 64
)

// field binds one catalog parameter to its text input.
type field struct {
	param param.Parameter
	input textinput.Model
}

// Model is the Bubbletea state for the parameter editor.
type Model struct {
	session *editor.Session
	log     *logger.Logger

	fields     []field
	colorInput textinput.Model
	focus      int

	dump     string
	dumpDiff string
	errorMsg string

	width    int
	quitting bool
}

// NewModel builds the editor form for the session's catalog, prefilled from
// the current snapshot.
func NewModel(session *editor.Session, log *logger.Logger) Model {
	m := Model{
		session: session,
		log:     log.With("component", "tui"),
		width:   80,
	}

	for _, p := range session.Catalog().All() {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.PromptStyle = promptStyle
		ti.Width = defaultInputWidth
		if p.Type == param.TypeNumber {
			ti.Placeholder = "0"
		}
		ti.SetValue(displayValue(session.CurrentValueFor(p.ID)))
		m.fields = append(m.fields, field{param: p, input: ti})
	}

	color := textinput.New()
	color.Prompt = "› "
	color.PromptStyle = promptStyle
	color.Placeholder = "color"
	color.CharLimit = colorCharLimit
	color.Width = defaultInputWidth
	m.colorInput = color

	m.setFocus(0)
	return m
}

// Init starts cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Session returns the editing session driven by the form.
func (m Model) Session() *editor.Session {
	return m.session
}

// Quitting reports whether the user asked to leave the editor.
func (m Model) Quitting() bool {
	return m.quitting
}

// displayValue normalises an absent value to the empty string for rendering.
func displayValue(v param.Value, ok bool) string {
	if !ok || v == nil {
		return ""
	}
	return v.String()
}

// focusCount is the number of focusable inputs: every field plus the color input.
func (m *Model) focusCount() int {
	return len(m.fields) + 1
}

func (m *Model) colorFocused() bool {
	return m.focus == len(m.fields)
}

func (m *Model) setFocus(index int) tea.Cmd {
	count := m.focusCount()
	m.focus = ((index % count) + count) % count

	var cmd tea.Cmd
	for i := range m.fields {
		if i == m.focus {
			cmd = m.fields[i].input.Focus()
			continue
		}
		m.fields[i].input.Blur()
	}
	if m.colorFocused() {
		cmd = m.colorInput.Focus()
	} else {
		m.colorInput.Blur()
	}
	return cmd
}

func (m *Model) setWidth(width int) {
	m.width = width
	inputWidth := width - 30
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > defaultInputWidth {
		inputWidth = defaultInputWidth
	}
	for i := range m.fields {
		m.fields[i].input.Width = inputWidth
	}
	m.colorInput.Width = inputWidth
}
