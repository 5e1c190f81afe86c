// Package xliff extracts translation units from XLIFF documents.
//
// Two incompatible document shapes are supported, matched by local tag name
// only (any namespace prefix or URI is ignored):
//
//   - flat (XLIFF 1.x):      trans-unit[@id] > source, target
//   - segmented (XLIFF 2.x): unit[@id] > segment+ > source, target
//
// When trans-unit elements exist anywhere in the document the flat shape
// wins and the segmented shape is never consulted.
package xliff

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Unit is one extracted source/target pair. IDs come straight from the
// document and are not guaranteed unique; segments of the same unit share
// a parent id and are disambiguated with a ":{index}" suffix.
type Unit struct {
	ID     string
	Source string
	Target string
}

// shape identifies which of the two supported document layouts a parsed
// document uses. Detection happens once per document; extraction dispatches
// on the result instead of re-probing tag names throughout.
type shape int

const (
	shapeFlat shape = iota
	shapeSegmented
)

// Parse reads and parses an XLIFF file. A malformed document is a fatal
// error for the whole operation; no partial result is produced.
func Parse(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return doc, nil
}

// ParseString parses an XLIFF document held in memory.
func ParseString(data string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return doc, nil
}

// Extract returns all translation units of doc in document order. The
// returned slice is a materialized, re-iterable sequence: both the quality
// checker and the glossary extractor read it independently and never
// mutate it. Units lacking either a source or a target are skipped.
func Extract(doc *etree.Document) []Unit {
	switch detectShape(doc) {
	case shapeFlat:
		return extractFlat(doc)
	default:
		return extractSegmented(doc)
	}
}

func detectShape(doc *etree.Document) shape {
	if len(doc.FindElements("//trans-unit")) > 0 {
		return shapeFlat
	}
	return shapeSegmented
}

func extractFlat(doc *etree.Document) []Unit {
	var units []Unit
	for _, tu := range doc.FindElements("//trans-unit") {
		src := tu.SelectElement("source")
		tgt := tu.SelectElement("target")
		if src == nil || tgt == nil {
			continue
		}
		units = append(units, Unit{
			ID:     tu.SelectAttrValue("id", ""),
			Source: innerText(src),
			Target: innerText(tgt),
		})
	}
	return units
}

func extractSegmented(doc *etree.Document) []Unit {
	var units []Unit
	for _, u := range doc.FindElements("//unit") {
		id := u.SelectAttrValue("id", "")

		segments := u.SelectElements("segment")
		if len(segments) == 0 {
			// Some tools wrap segments in intermediate containers.
			segments = u.FindElements(".//segment")
		}

		var extracted []Unit
		for _, seg := range segments {
			src := seg.FindElement(".//source")
			tgt := seg.FindElement(".//target")
			if src == nil || tgt == nil {
				continue
			}
			extracted = append(extracted, Unit{
				ID:     id,
				Source: innerText(src),
				Target: innerText(tgt),
			})
		}

		// A single segment keeps the unit's id; multiple segments get a
		// 1-based ":{index}" suffix.
		if len(extracted) > 1 {
			for i := range extracted {
				extracted[i].ID = fmt.Sprintf("%s:%d", id, i+1)
			}
		}
		units = append(units, extracted...)
	}
	return units
}

// Targets returns the text of every target element in document order,
// surrounding whitespace stripped. Inline markup contributes only its text.
func Targets(doc *etree.Document) []string {
	var targets []string
	for _, el := range doc.FindElements("//target") {
		targets = append(targets, strings.TrimSpace(innerText(el)))
	}
	return targets
}

// innerText concatenates all character data below e in document order,
// descending through inline markup elements.
func innerText(e *etree.Element) string {
	var b strings.Builder
	collectText(e, &b)
	return b.String()
}

func collectText(e *etree.Element, b *strings.Builder) {
	for _, tok := range e.Child {
		switch c := tok.(type) {
		case *etree.CharData:
			b.WriteString(c.Data)
		case *etree.Element:
			collectText(c, b)
		}
	}
}
