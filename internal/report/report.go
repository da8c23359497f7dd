// Package report prints the surface summary and the limit checks as
// line-oriented text.
package report

import (
	"fmt"
	"io"

	"landxmlcheck/internal/check"
	"landxmlcheck/internal/landxml"
	"landxmlcheck/internal/number"
)

// Printer writes reports to a single writer.
type Printer struct {
	w  io.Writer
	st styles
}

// NewPrinter returns a Printer for w. Colour follows what w supports unless
// plain is set.
func NewPrinter(w io.Writer, plain bool) *Printer {
	return &Printer{w: w, st: newStyles(w, plain)}
}

// Summary prints each group's surface and point totals, then the grand totals.
func (p *Printer) Summary(s landxml.Summary) {
	p.println("")
	p.println(p.st.title.Render("=== Surface Summary ==="))

	totalSurfaces, totalPoints := 0, 0
	for _, g := range s.Groups {
		surfaces, points := len(g.Surfaces), g.PointTotal()
		totalSurfaces += surfaces
		totalPoints += points

		p.println("")
		p.println("Group: " + g.Name)
		p.println("  Number of Surfaces: " + number.Format(surfaces))
		p.println("  Total Points:        " + number.Format(points))
	}

	p.println("")
	p.println(p.st.rule.Render("----------------------------"))
	p.println("Total Surfaces: " + number.Format(totalSurfaces))
	p.println("Total Points:   " + number.Format(totalPoints))
}

// Checks prints one status line per result and a closing confirmation.
func (p *Printer) Checks(results []check.Result) {
	p.println("")
	p.println(p.st.title.Render("=== Limit Checks ==="))
	for _, r := range results {
		p.println(p.Line(r))
	}
	p.println("")
	p.println("All limits checked.")
}

// Line renders a single result. The style wraps the whole line, so colour is
// reset before the newline.
func (p *Printer) Line(r check.Result) string {
	text := fmt.Sprintf("%s: %s", r.Label, r.Message())
	if r.Outcome.Failed() {
		return p.st.fail.Render(FailGlyph + " " + text)
	}
	return p.st.pass.Render(PassGlyph + " " + text)
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.w, s)
}
