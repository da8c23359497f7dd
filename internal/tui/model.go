package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"landxmlcheck/internal/check"
	"landxmlcheck/internal/landxml"
	"landxmlcheck/internal/number"
	"landxmlcheck/internal/report"
)

const maxNameWidth = 32

type Model struct {
	width  int
	height int

	helpVisible bool
	status      string

	path    string
	summary landxml.Summary
	limits  check.Limits

	// index of the group whose surfaces are listed; -1 lists the groups
	group int
	tbl   table.Model
}

// New returns a browser over s, opened on the groups view.
func New(path string, s landxml.Summary, l check.Limits) Model {
	m := Model{
		helpVisible: true,
		path:        path,
		summary:     s,
		limits:      l,
		group:       -1,
	}
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.showGroups()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// showGroups lists every group with its counts and point check.
func (m *Model) showGroups() {
	prev := m.group
	m.group = -1

	nameW := len("Group")
	rows := make([]table.Row, 0, len(m.summary.Groups))
	for i, g := range m.summary.Groups {
		nameW = max(nameW, len(g.Name))
		r := check.GroupResult(g, m.limits)
		status := report.PassGlyph + " " + r.Outcome.String()
		if r.Outcome.Failed() {
			status = report.FailGlyph + " " + r.Outcome.String()
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			g.Name,
			number.Format(len(g.Surfaces)),
			number.Format(r.Value),
			status,
		})
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Group", Width: min(nameW+2, maxNameWidth)},
		{Title: "Surfaces", Width: 10},
		{Title: "Points", Width: 14},
		{Title: "Check", Width: 14},
	}
	m.setTable(cols, rows)
	if prev >= 0 {
		m.tbl.SetCursor(prev)
	}
	m.status = fmt.Sprintf("%d groups", len(m.summary.Groups))
}

// openGroup lists the surfaces of group i.
func (m *Model) openGroup(i int) {
	if i < 0 || i >= len(m.summary.Groups) {
		return
	}
	g := m.summary.Groups[i]
	m.group = i

	nameW := len("Surface")
	rows := make([]table.Row, 0, len(g.Surfaces))
	for j, s := range g.Surfaces {
		nameW = max(nameW, len(s.Name))
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", j+1),
			s.Name,
			number.Format(s.PointCount),
		})
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Surface", Width: min(nameW+2, maxNameWidth)},
		{Title: "Points", Width: 14},
	}
	m.setTable(cols, rows)
	m.tbl.SetCursor(0)
	m.status = "group: " + g.Name
	if len(g.Surfaces) == 0 {
		m.status += " (no surfaces)"
	}
}

func (m *Model) setTable(cols []table.Column, rows []table.Row) {
	// clear rows first so rows and columns never disagree during SetColumns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
