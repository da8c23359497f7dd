package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// header, totals, box border and footer
		m.tbl.SetHeight(max(3, m.height-7))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.group < 0 {
				m.openGroup(m.tbl.Cursor())
			}
			return m, nil
		case "esc", "backspace":
			if m.group >= 0 {
				m.showGroups()
			}
			return m, nil
		case "?":
			m.helpVisible = !m.helpVisible
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}
