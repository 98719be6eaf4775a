package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/paramedit/internal/dump"
)

// ModelDumpedMsg carries a rendering of the current snapshot.
type ModelDumpedMsg struct {
	YAML string
	Diff string
	Err  error
}

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWidth(msg.Width)
		return m, nil

	case ModelDumpedMsg:
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.errorMsg = ""
		m.dump = msg.YAML
		m.dumpDiff = msg.Diff
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "down":
		return m, m.setFocus(m.focus + 1)

	case "shift+tab", "up":
		return m, m.setFocus(m.focus - 1)

	case "ctrl+s":
		return m, dumpCmd(m)

	case "enter":
		if m.colorFocused() {
			return m.addColor()
		}
		return m, m.setFocus(m.focus + 1)
	}

	return m.updateFocused(msg)
}

// addColor submits the color input. The input is cleared only when the color
// was accepted, so blank submissions leave whatever whitespace was typed.
func (m Model) addColor() (tea.Model, tea.Cmd) {
	before := len(m.session.Model().Colors())
	after := m.session.OnAddColor(m.colorInput.Value())
	if len(after.Colors()) > before {
		m.colorInput.Reset()
	}
	return m, nil
}

// updateFocused forwards msg to the focused input and applies a field edit
// whenever its text changed.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.colorFocused() {
		m.colorInput, cmd = m.colorInput.Update(msg)
		return m, cmd
	}

	f := &m.fields[m.focus]
	previous := f.input.Value()
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() == previous {
		return m, cmd
	}

	if _, err := m.session.OnFieldEdit(f.param.ID, f.input.Value()); err != nil {
		m.errorMsg = err.Error()
		m.log.Error(err, "field edit failed", "param_id", int(f.param.ID))
	}
	return m, cmd
}

// dumpCmd renders the current snapshot and its diff against the initial one.
// Snapshots are captured before the command runs off the event loop.
func dumpCmd(m Model) tea.Cmd {
	initial := m.session.InitialModel()
	current := m.session.Model()
	sessionID := m.session.ID()
	log := m.log
	return func() tea.Msg {
		out, err := dump.Encode(current, dump.FormatYAML)
		if err != nil {
			return ModelDumpedMsg{Err: err}
		}
		changes, err := dump.Diff(initial, current)
		if err != nil {
			return ModelDumpedMsg{Err: err}
		}
		log.Info("model dumped", "session_id", sessionID, "values", current.Len(), "colors", len(current.Colors()), "snapshot", string(out))
		return ModelDumpedMsg{YAML: string(out), Diff: changes}
	}
}
