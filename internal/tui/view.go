package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"landxmlcheck/internal/check"
	"landxmlcheck/internal/number"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(20, m.width)

	header := titleStyle.Render(" landxmlcheck ─ " + filepath.Base(m.path) + " ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	body := boxStyle.Render(m.tbl.View())

	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, m.renderTotals(), body, footer)
	return appStyle.Width(contentWidth).Render(ui)
}

// renderTotals shows the document-wide counts, failing ones highlighted.
func (m Model) renderTotals() string {
	var parts []string
	for _, r := range check.Evaluate(m.summary, m.limits)[:2] {
		s := fmt.Sprintf("%s %s", strings.ToLower(r.Label), number.Format(r.Value))
		if r.Outcome.Failed() {
			s = failStyle.Render(s + " (" + r.Outcome.String() + ")")
		}
		parts = append(parts, s)
	}
	return " " + strings.Join(parts, dimStyle.Render("  │  "))
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{"↑↓ move", "q quit", "? help"}
	if m.group < 0 {
		keys = append([]string{"Enter surfaces"}, keys...)
	} else {
		keys = append([]string{"Esc groups"}, keys...)
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
