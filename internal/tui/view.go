package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/paramedit/internal/param"
)

// View renders the editor form.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, titleStyle.Render("Parameter editor"))

	sections = append(sections, sectionStyle.Render("Parameters"))
	for i, f := range m.fields {
		sections = append(sections, m.renderField(i, f))
	}

	sections = append(sections, sectionStyle.Render("Colors"))
	sections = append(sections, m.renderColors())

	if m.errorMsg != "" {
		sections = append(sections, errorStyle.Render("✗ "+m.errorMsg))
	}

	if m.dump != "" {
		sections = append(sections, panelStyle.Render(m.renderDump()))
	}

	sections = append(sections, hintStyle.MarginTop(1).Render("tab/shift+tab move • enter add color • ctrl+s get model • esc quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderField(index int, f field) string {
	style := labelStyle
	if index == m.focus {
		style = focusedLabelStyle
	}
	label := style.Render(f.param.Name)
	line := lipgloss.JoinHorizontal(lipgloss.Top, label, f.input.View())

	hint := hintStyle.Render(fmt.Sprintf("  [%s]", f.param.Type.Label()))
	if f.param.Type == param.TypeNumber {
		hint = coercedStyle.Render(fmt.Sprintf("  = %s", displayValue(m.session.CurrentValueFor(f.param.ID))))
	}
	return line + hint
}

func (m Model) renderColors() string {
	style := labelStyle
	if m.colorFocused() {
		style = focusedLabelStyle
	}
	input := lipgloss.JoinHorizontal(lipgloss.Top, style.Render("Add color"), m.colorInput.View())
	list := "Colors: " + strings.Join(m.session.Model().Colors(), ", ")
	return lipgloss.JoinVertical(lipgloss.Left, input, list)
}

func (m Model) renderDump() string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(m.dump, "\n"))
	if m.dumpDiff == "" {
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("no changes since start"))
		return b.String()
	}

	b.WriteString("\n\n")
	for _, line := range strings.Split(strings.TrimRight(m.dumpDiff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			b.WriteString(hintStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(diffAddStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(diffRemoveStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
