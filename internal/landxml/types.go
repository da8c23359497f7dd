package landxml

// Default names used when a group or surface element carries no name attribute.
const (
	UnnamedGroup   = "UnnamedGroup"
	UnnamedSurface = "UnnamedSurface"
)

// Surface is one Surface element and the number of P nodes beneath it.
type Surface struct {
	Name       string
	PointCount int
}

// SurfaceGroup is one Surfaces container, surfaces in document order.
type SurfaceGroup struct {
	Name     string
	Surfaces []Surface
}

// PointTotal sums the point counts of the group's surfaces.
func (g SurfaceGroup) PointTotal() int {
	total := 0
	for _, s := range g.Surfaces {
		total += s.PointCount
	}
	return total
}

// Summary is the flattened view of a LandXML document.
type Summary struct {
	Groups []SurfaceGroup
}

// TotalSurfaces counts surfaces across all groups.
func (s Summary) TotalSurfaces() int {
	total := 0
	for _, g := range s.Groups {
		total += len(g.Surfaces)
	}
	return total
}

// TotalPoints sums the point totals of all groups.
func (s Summary) TotalPoints() int {
	total := 0
	for _, g := range s.Groups {
		total += g.PointTotal()
	}
	return total
}
