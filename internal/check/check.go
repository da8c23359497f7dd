// Package check classifies LandXML surface counts against the tool-ingestion
// limits.
package check

import (
	"landxmlcheck/internal/landxml"
	"landxmlcheck/internal/number"
)

// Theoretical ingestion limits.
const (
	PointLimit      = 160_000_000
	SurfaceLimit    = 850
	GroupPointLimit = 16_000_000
)

// Limits holds the thresholds a Summary is checked against.
type Limits struct {
	Points      int
	Surfaces    int
	GroupPoints int
}

var DefaultLimits = Limits{
	Points:      PointLimit,
	Surfaces:    SurfaceLimit,
	GroupPoints: GroupPointLimit,
}

// Outcome is the result of comparing one count with its limit.
type Outcome int

const (
	OK Outcome = iota
	Exceeded
	Zero
	Negative
)

func (o Outcome) String() string {
	switch o {
	case Exceeded:
		return "exceeded"
	case Zero:
		return "zero"
	case Negative:
		return "negative"
	default:
		return "ok"
	}
}

// Failed reports whether o is anything other than OK.
func (o Outcome) Failed() bool { return o != OK }

// Classify checks, in order: above limit, zero, negative, otherwise OK.
func Classify(value, limit int) Outcome {
	switch {
	case value > limit:
		return Exceeded
	case value == 0:
		return Zero
	case value < 0:
		return Negative
	default:
		return OK
	}
}

// Kind names what a count measures.
type Kind int

const (
	Points Kind = iota
	Surfaces
)

func (k Kind) noun() string {
	if k == Surfaces {
		return "surface"
	}
	return "point"
}

// Result is one checked count.
type Result struct {
	Label   string
	Kind    Kind
	Value   int
	Limit   int
	Outcome Outcome
}

func newResult(label string, kind Kind, value, limit int) Result {
	return Result{Label: label, Kind: kind, Value: value, Limit: limit, Outcome: Classify(value, limit)}
}

// Message describes the outcome with the measured value and, where it
// applies, the limit.
func (r Result) Message() string {
	switch r.Outcome {
	case Exceeded:
		return "Exceeded! (" + number.Format(r.Value) + " > " + number.Format(r.Limit) + ")"
	case Zero:
		return "No " + r.Kind.noun() + "s found!"
	case Negative:
		return "Negative " + r.Kind.noun() + " count! (" + number.Format(r.Value) + ")"
	default:
		return "OK (" + number.Format(r.Value) + " ≤ " + number.Format(r.Limit) + ")"
	}
}

// Evaluate checks total points, total surfaces and then each group's points,
// in that order.
func Evaluate(s landxml.Summary, l Limits) []Result {
	out := make([]Result, 0, 2+len(s.Groups))
	out = append(out,
		newResult("Total Points", Points, s.TotalPoints(), l.Points),
		newResult("Total Surfaces", Surfaces, s.TotalSurfaces(), l.Surfaces),
	)
	for _, g := range s.Groups {
		out = append(out, GroupResult(g, l))
	}
	return out
}

// GroupResult checks a single group's point total.
func GroupResult(g landxml.SurfaceGroup, l Limits) Result {
	return newResult(g.Name, Points, g.PointTotal(), l.GroupPoints)
}
