package landxml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
)

// Local tag names matched by the loader, namespace prefixes ignored.
const (
	tagGroup   = "Surfaces"
	tagSurface = "Surface"
	tagPoint   = "P"
)

// DocumentParseError reports input that is not a well-formed XML document.
type DocumentParseError struct {
	Path string
	Err  error
}

func (e *DocumentParseError) Error() string {
	if e.Path == "" {
		return "landxml: parse: " + e.Err.Error()
	}
	return fmt.Sprintf("landxml: parse %s: %v", e.Path, e.Err)
}

func (e *DocumentParseError) Unwrap() error { return e.Err }

// Load reads the XML file at path and flattens its Surfaces/Surface/P
// structure into a Summary.
func Load(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("landxml: open: %w", err)
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		var perr *DocumentParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return Summary{}, err
	}
	return s, nil
}

// Parse is Load for an already opened document.
func Parse(r io.Reader) (Summary, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return Summary{}, &DocumentParseError{Err: err}
	}
	roots := doc.ChildElements()
	switch {
	case len(roots) == 0:
		return Summary{}, &DocumentParseError{Err: errors.New("no root element")}
	case len(roots) > 1:
		return Summary{}, &DocumentParseError{Err: errors.New("multiple root elements")}
	}
	if err := checkWellFormed(doc); err != nil {
		return Summary{}, &DocumentParseError{Err: err}
	}

	var s Summary
	for _, groupEl := range descendants(&doc.Element, tagGroup) {
		g := SurfaceGroup{Name: attrOr(groupEl, "name", UnnamedGroup)}
		for _, surfEl := range descendants(groupEl, tagSurface) {
			g.Surfaces = append(g.Surfaces, Surface{
				Name:       attrOr(surfEl, "name", UnnamedSurface),
				PointCount: countDescendants(surfEl, tagPoint),
			})
		}
		s.Groups = append(s.Groups, g)
	}
	return s, nil
}

// checkWellFormed rejects what the decoder lets through: text outside the
// root element, undeclared namespace prefixes and repeated attributes.
func checkWellFormed(doc *etree.Document) error {
	for _, t := range doc.Child {
		if cd, ok := t.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return errors.New("text outside the root element")
		}
	}
	var walk func(el *etree.Element) error
	walk = func(el *etree.Element) error {
		if !prefixDeclared(el, el.Space) {
			return fmt.Errorf("element %s: undeclared namespace prefix %q", el.FullTag(), el.Space)
		}
		seen := make(map[string]bool, len(el.Attr))
		for _, a := range el.Attr {
			if seen[a.FullKey()] {
				return fmt.Errorf("element %s: repeated attribute %s", el.FullTag(), a.FullKey())
			}
			seen[a.FullKey()] = true
			if a.Space != "xmlns" && !prefixDeclared(el, a.Space) {
				return fmt.Errorf("element %s: undeclared namespace prefix %q", el.FullTag(), a.Space)
			}
		}
		for _, c := range el.ChildElements() {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(doc.Root())
}

// prefixDeclared reports whether prefix is bound by el or one of its
// ancestors. The empty prefix and the reserved xml/xmlns prefixes always are.
func prefixDeclared(el *etree.Element, prefix string) bool {
	switch prefix {
	case "", "xml", "xmlns":
		return true
	}
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if a.Space == "xmlns" && a.Key == prefix {
				return true
			}
		}
	}
	return false
}

// descendants returns every element below el whose local tag is tag, in
// document order.
func descendants(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, c := range e.ChildElements() {
			if c.Tag == tag {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(el)
	return out
}

func countDescendants(el *etree.Element, tag string) int {
	n := 0
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			n++
		}
		n += countDescendants(c, tag)
	}
	return n
}

// attrOr returns the value of the unprefixed attribute key, or def.
func attrOr(el *etree.Element, key, def string) string {
	for _, a := range el.Attr {
		if a.Space == "" && a.Key == key {
			return a.Value
		}
	}
	return def
}
