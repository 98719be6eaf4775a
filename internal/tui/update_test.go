package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/paramedit/internal/param"
)

func currentValue(t *testing.T, m Model, id param.ID) param.Value {
	t.Helper()

	v, ok := m.Session().CurrentValueFor(id)
	require.True(t, ok)
	return v
}

func TestFocusCyclesThroughInputs(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.colorFocused())
	require.True(t, m.colorInput.Focused())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 0, m.focus)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.True(t, m.colorFocused())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 3, m.focus)
	require.True(t, m.fields[3].input.Focused())
	require.False(t, m.fields[0].input.Focused())
}

func TestTypingIntoNumberFieldCoerces(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 2, m.focus)

	backspace := tea.KeyMsg{Type: tea.KeyBackspace}
	m = press(t, m, backspace, backspace, backspace, backspace)
	require.Equal(t, "", m.fields[2].input.Value())
	require.Equal(t, param.Number(0), currentValue(t, m, 3))

	m = press(t, m, runes("9999"))
	require.Equal(t, param.Number(9999), currentValue(t, m, 3))

	m = press(t, m, runes("x"))
	require.Equal(t, "9999x", m.fields[2].input.Value())
	require.Equal(t, param.Number(0), currentValue(t, m, 3))

	require.Equal(t, param.Text("повседневное"), currentValue(t, m, 1))
	require.Equal(t, param.Number(21), currentValue(t, m, 4))
}

func TestTypingIntoStringFieldKeepsText(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes(" 2"))
	require.Equal(t, param.Text("макси 2"), currentValue(t, m, 2))
}

func TestEnterOnFieldAdvancesFocus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, m.focus)
	require.False(t, m.Session().Dirty())
}

func TestAddColorFromInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.True(t, m.colorFocused())

	m = press(t, m, runes("  green "), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"red", "blue", "green"}, m.Session().Model().Colors())
	require.Equal(t, "", m.colorInput.Value())

	m = press(t, m, runes("   "), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"red", "blue", "green"}, m.Session().Model().Colors())
	require.Equal(t, "   ", m.colorInput.Value(), "rejected input is kept")

	m.colorInput.Reset()
	m = press(t, m, runes("Navy"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"red", "blue", "green", "Navy"}, m.Session().Model().Colors())
}

func TestCtrlSDumpsModel(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, runes("5"))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	m = updated.(Model)

	msg := cmd()
	dumped, ok := msg.(ModelDumpedMsg)
	require.True(t, ok)
	require.NoError(t, dumped.Err)
	require.Contains(t, dumped.YAML, "value: 12345")
	require.Contains(t, dumped.Diff, "+    value: 12345")

	m = press(t, m, dumped)
	require.Equal(t, dumped.YAML, m.dump)
	require.Equal(t, dumped.Diff, m.dumpDiff)
}

func TestDumpErrorIsShown(t *testing.T) {
	t.Parallel()

	m := press(t, newTestModel(t), ModelDumpedMsg{Err: errTest("encode failed")})
	require.Equal(t, "encode failed", m.errorMsg)
	require.Empty(t, m.dump)
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		updated, cmd := newTestModel(t).Update(tea.KeyMsg{Type: key})
		m := updated.(Model)
		require.True(t, m.Quitting())
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
