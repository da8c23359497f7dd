package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Same terrain palette as the browser.
var (
	accentFg = lipgloss.AdaptiveColor{Light: "#2F6B3A", Dark: "#7FB77E"}
	failFg   = lipgloss.AdaptiveColor{Light: "#A23B2A", Dark: "#E07A5F"}
	passFg   = lipgloss.AdaptiveColor{Light: "#2F6B3A", Dark: "#7FB77E"}
	dimFg    = lipgloss.AdaptiveColor{Light: "#7A7368", Dark: "#9A9286"}
)

// Glyphs leading each check line.
const (
	FailGlyph = "❌"
	PassGlyph = "✔"
)

type styles struct {
	title lipgloss.Style
	rule  lipgloss.Style
	fail  lipgloss.Style
	pass  lipgloss.Style
}

// newStyles binds the styles to a renderer for w; plain forces the ASCII
// profile regardless of what w supports.
func newStyles(w io.Writer, plain bool) styles {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		title: r.NewStyle().Foreground(accentFg).Bold(true),
		rule:  r.NewStyle().Foreground(dimFg),
		fail:  r.NewStyle().Foreground(failFg),
		pass:  r.NewStyle().Foreground(passFg),
	}
}
