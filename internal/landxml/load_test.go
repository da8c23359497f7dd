package landxml

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeXML(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "in.xml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func points(n int) string {
	return strings.Repeat("<P>0 0 0</P>", n)
}

func TestLoadTwoSurfaces(t *testing.T) {
	p := writeXML(t, `<?xml version="1.0"?>
<LandXML>
  <Surfaces name="Design">
    <Surface name="EG"><Definition><Pnts>`+points(3)+`</Pnts></Definition></Surface>
    <Surface name="FG"><Definition><Pnts>`+points(5)+`</Pnts></Definition></Surface>
  </Surfaces>
</LandXML>`)
	s, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(s.Groups))
	}
	g := s.Groups[0]
	if g.Name != "Design" || len(g.Surfaces) != 2 {
		t.Fatalf("group = %+v", g)
	}
	if g.Surfaces[0].Name != "EG" || g.Surfaces[0].PointCount != 3 {
		t.Errorf("surface 0 = %+v", g.Surfaces[0])
	}
	if g.Surfaces[1].Name != "FG" || g.Surfaces[1].PointCount != 5 {
		t.Errorf("surface 1 = %+v", g.Surfaces[1])
	}
	if got := g.PointTotal(); got != 8 {
		t.Errorf("PointTotal = %d, want 8", got)
	}
	if s.TotalPoints() != 8 || s.TotalSurfaces() != 2 {
		t.Errorf("totals = %d points, %d surfaces", s.TotalPoints(), s.TotalSurfaces())
	}
}

func TestParseNamespacePrefixes(t *testing.T) {
	plain := `<LandXML><Surfaces name="G"><Surface name="S">` + points(2) + `</Surface></Surfaces></LandXML>`
	prefixed := `<lx:LandXML xmlns:lx="http://www.landxml.org/schema/LandXML-1.2">` +
		`<lx:Surfaces name="G"><lx:Surface name="S">` +
		`<lx:P>1</lx:P><lx:P>2</lx:P></lx:Surface></lx:Surfaces></lx:LandXML>`
	defaultNS := `<LandXML xmlns="http://www.landxml.org/schema/LandXML-1.2"><Surfaces name="G"><Surface name="S">` +
		points(2) + `</Surface></Surfaces></LandXML>`

	want, err := Parse(strings.NewReader(plain))
	if err != nil {
		t.Fatal(err)
	}
	for name, doc := range map[string]string{"prefixed": prefixed, "default": defaultNS} {
		got, err := Parse(strings.NewReader(doc))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(got.Groups) != 1 || got.Groups[0].Name != want.Groups[0].Name ||
			got.TotalPoints() != want.TotalPoints() || got.TotalSurfaces() != want.TotalSurfaces() {
			t.Errorf("%s: got %+v, want %+v", name, got, want)
		}
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse(strings.NewReader(`<Surfaces><Surface>` + points(1) + `</Surface></Surfaces>`))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(s.Groups))
	}
	if s.Groups[0].Name != UnnamedGroup {
		t.Errorf("group name = %q", s.Groups[0].Name)
	}
	if s.Groups[0].Surfaces[0].Name != UnnamedSurface {
		t.Errorf("surface name = %q", s.Groups[0].Surfaces[0].Name)
	}
}

func TestParsePrefixedNameAttributeIgnored(t *testing.T) {
	s, err := Parse(strings.NewReader(`<r xmlns:x="urn:x"><Surfaces x:name="nope"/></r>`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Groups[0].Name != UnnamedGroup {
		t.Errorf("group name = %q, want %q", s.Groups[0].Name, UnnamedGroup)
	}
}

func TestParseNoSurfaces(t *testing.T) {
	s, err := Parse(strings.NewReader(`<kml><Placemark><Point/></Placemark></kml>`))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Groups) != 0 {
		t.Errorf("groups = %d, want 0", len(s.Groups))
	}
	if s.TotalPoints() != 0 || s.TotalSurfaces() != 0 {
		t.Errorf("totals = %d, %d", s.TotalPoints(), s.TotalSurfaces())
	}
}

func TestParseEmptyGroup(t *testing.T) {
	s, err := Parse(strings.NewReader(`<LandXML><Surfaces name="Empty"></Surfaces></LandXML>`))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Groups) != 1 || len(s.Groups[0].Surfaces) != 0 || s.Groups[0].PointTotal() != 0 {
		t.Errorf("summary = %+v", s)
	}
}

func TestParseDocumentOrderAndNesting(t *testing.T) {
	doc := `<LandXML>
  <Surfaces name="A">
    <Surface name="a1">` + points(1) + `</Surface>
    <Surfaces name="B">
      <Surface name="b1">` + points(2) + `</Surface>
    </Surfaces>
  </Surfaces>
  <Surfaces name="C"><Surface name="c1">` + points(4) + `</Surface></Surfaces>
</LandXML>`
	s, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, g := range s.Groups {
		names = append(names, g.Name)
	}
	if strings.Join(names, ",") != "A,B,C" {
		t.Fatalf("group order = %v", names)
	}
	// A sees its own surface and the one inside the nested group.
	if len(s.Groups[0].Surfaces) != 2 || s.Groups[0].PointTotal() != 3 {
		t.Errorf("A = %+v", s.Groups[0])
	}
	if s.Groups[1].PointTotal() != 2 || s.Groups[2].PointTotal() != 4 {
		t.Errorf("B, C = %+v, %+v", s.Groups[1], s.Groups[2])
	}
}

func TestParseRootIsGroup(t *testing.T) {
	s, err := Parse(strings.NewReader(`<Surfaces name="Root"><Surface>` + points(2) + `</Surface></Surfaces>`))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Groups) != 1 || s.Groups[0].Name != "Root" || s.TotalPoints() != 2 {
		t.Errorf("summary = %+v", s)
	}
}

func TestTotalsAreSumsOfGroups(t *testing.T) {
	s := Summary{Groups: []SurfaceGroup{
		{Name: "a", Surfaces: []Surface{{PointCount: 1}, {PointCount: 2}}},
		{Name: "b", Surfaces: []Surface{{PointCount: 10}}},
		{Name: "c"},
	}}
	sum := 0
	for _, g := range s.Groups {
		sum += g.PointTotal()
	}
	if s.TotalPoints() != sum || sum != 13 {
		t.Errorf("TotalPoints = %d, group sum = %d", s.TotalPoints(), sum)
	}
	if s.TotalSurfaces() != 3 {
		t.Errorf("TotalSurfaces = %d", s.TotalSurfaces())
	}
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]string{
		"unclosed":          `<LandXML><Surfaces>`,
		"mismatched":        `<a><b></a></b>`,
		"empty":             ``,
		"text only":         `hello`,
		"two roots":         `<a/><b/>`,
		"leading text":      `hello<LandXML><Surfaces/></LandXML>`,
		"trailing text":     `<LandXML><Surfaces/></LandXML>trailing junk`,
		"undeclared prefix": `<lx:LandXML><lx:Surfaces name="G"/></lx:LandXML>`,
		"undeclared attr":   `<LandXML><Surfaces q:name="G"/></LandXML>`,
		"repeated attr":     `<LandXML><Surfaces name="a" name="b"/></LandXML>`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(doc))
			var perr *DocumentParseError
			if !errors.As(err, &perr) {
				t.Fatalf("err = %v, want *DocumentParseError", err)
			}
		})
	}
}

func TestParseWellFormedEdges(t *testing.T) {
	cases := map[string]string{
		"surrounding whitespace": "\n  <LandXML><Surfaces/></LandXML>\n\t",
		"comment after root":     `<LandXML><Surfaces/></LandXML><!-- end -->`,
		"prefix on ancestor":     `<lx:LandXML xmlns:lx="urn:lx"><a><lx:Surfaces/></a></lx:LandXML>`,
		"xml prefix":             `<LandXML xml:lang="en"><Surfaces/></LandXML>`,
		"same key other prefix":  `<LandXML xmlns:x="urn:x"><Surfaces name="a" x:name="b"/></LandXML>`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := Parse(strings.NewReader(doc))
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			if len(s.Groups) != 1 {
				t.Errorf("groups = %d, want 1", len(s.Groups))
			}
		})
	}
}

func TestLoadMalformedCarriesPath(t *testing.T) {
	p := writeXML(t, `<LandXML><Surfaces>`)
	_, err := Load(p)
	var perr *DocumentParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *DocumentParseError", err)
	}
	if perr.Path != p || !strings.Contains(err.Error(), p) {
		t.Errorf("error %q does not name %s", err, p)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}
