package xliff

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const flatDoc = `<?xml version="1.0" encoding="UTF-8"?>
<xliff version="1.2">
  <file source-language="en-US" target-language="ja" datatype="plaintext" original="in.txt">
    <body>
      <trans-unit id="1">
        <source>Hello World</source>
        <target>こんにちは世界</target>
      </trans-unit>
      <trans-unit id="2">
        <source>Second <b>bold</b> sentence.</source>
        <target>二番目の<b>太字</b>の文。</target>
      </trans-unit>
      <trans-unit id="3">
        <source>No target here</source>
      </trans-unit>
    </body>
  </file>
</xliff>`

func TestExtract_FlatShape(t *testing.T) {
	doc, err := ParseString(flatDoc)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	units := Extract(doc)
	want := []Unit{
		{ID: "1", Source: "Hello World", Target: "こんにちは世界"},
		{ID: "2", Source: "Second bold sentence.", Target: "二番目の太字の文。"},
	}
	if diff := cmp.Diff(want, units); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_FlatShape_Namespaced(t *testing.T) {
	doc, err := ParseString(`<xliff xmlns="urn:oasis:names:tc:xliff:document:1.2" version="1.2">
  <file><body>
    <trans-unit id="u1"><source>One</source><target>一</target></trans-unit>
  </body></file>
</xliff>`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	units := Extract(doc)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if units[0].ID != "u1" || units[0].Source != "One" || units[0].Target != "一" {
		t.Errorf("unexpected unit: %+v", units[0])
	}
}

func TestExtract_SegmentedShape(t *testing.T) {
	doc, err := ParseString(`<xliff version="2.0">
  <file>
    <unit id="a">
      <segment><source>Only one</source><target>一つだけ</target></segment>
    </unit>
    <unit id="b">
      <segment><source>First</source><target>最初</target></segment>
      <segment><source>Second</source><target>次</target></segment>
    </unit>
  </file>
</xliff>`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	units := Extract(doc)
	want := []Unit{
		{ID: "a", Source: "Only one", Target: "一つだけ"},
		{ID: "b:1", Source: "First", Target: "最初"},
		{ID: "b:2", Source: "Second", Target: "次"},
	}
	if diff := cmp.Diff(want, units); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_SegmentedShape_NestedSegments(t *testing.T) {
	// Segments wrapped in an intermediate container are found by the
	// subtree fallback.
	doc, err := ParseString(`<xliff version="2.0">
  <file>
    <unit id="w">
      <wrapper>
        <segment><source>Wrapped</source><target>包装</target></segment>
      </wrapper>
    </unit>
  </file>
</xliff>`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	units := Extract(doc)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if units[0].ID != "w" || units[0].Source != "Wrapped" {
		t.Errorf("unexpected unit: %+v", units[0])
	}
}

func TestExtract_SegmentMissingTarget(t *testing.T) {
	doc, err := ParseString(`<xliff version="2.0">
  <file>
    <unit id="a">
      <segment><source>Kept</source><target>保持</target></segment>
      <segment><source>Dropped</source></segment>
    </unit>
  </file>
</xliff>`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	units := Extract(doc)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	// Only one segment survived, so the unit id stays unsuffixed.
	if units[0].ID != "a" {
		t.Errorf("expected id %q, got %q", "a", units[0].ID)
	}
}

func TestExtract_FlatShapeTakesPriority(t *testing.T) {
	doc, err := ParseString(`<xliff>
  <file>
    <trans-unit id="flat"><source>Flat</source><target>平ら</target></trans-unit>
    <unit id="seg">
      <segment><source>Segmented</source><target>分割</target></segment>
    </unit>
  </file>
</xliff>`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	units := Extract(doc)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if units[0].ID != "flat" {
		t.Errorf("expected the trans-unit data only, got %+v", units[0])
	}
}

func TestExtract_PreservesInteriorWhitespace(t *testing.T) {
	doc, err := ParseString(`<x><trans-unit id="1">
  <source xml:space="preserve">line one
line two</source>
  <target xml:space="preserve">行一
行二</target>
</trans-unit></x>`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	units := Extract(doc)
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if !strings.Contains(units[0].Source, "\n") {
		t.Errorf("interior newline should be preserved: %q", units[0].Source)
	}
}

func TestParse_MalformedXML(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "bad.xml")
	if err := os.WriteFile(tmp, []byte("<xliff><unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(tmp); err == nil {
		t.Error("expected error for malformed XML")
	}
}

func TestParse_MissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "absent.xml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTargets_DocumentOrder(t *testing.T) {
	doc, err := ParseString(flatDoc)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	targets := Targets(doc)
	want := []string{"こんにちは世界", "二番目の太字の文。"}
	if diff := cmp.Diff(want, targets); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
}

func TestSkeleton_Render(t *testing.T) {
	sk := Skeleton{
		Original:   "book.txt",
		SourceLang: "en-US",
		TargetLang: "ja",
		Sentences:  []string{"First sentence.", "A < B & C"},
	}
	out := sk.Render()

	// The rendered document must parse back into the same units.
	doc, err := ParseString(out)
	if err != nil {
		t.Fatalf("rendered skeleton does not parse: %v", err)
	}
	units := Extract(doc)
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	if units[0].ID != "1" || units[1].ID != "2" {
		t.Errorf("expected sequential ids, got %q and %q", units[0].ID, units[1].ID)
	}
	if units[1].Source != "A < B & C" {
		t.Errorf("escaping round-trip failed: %q", units[1].Source)
	}
	if !strings.Contains(out, `xml:space="preserve"`) {
		t.Error("expected xml:space=\"preserve\" on content elements")
	}
	if !strings.Contains(out, `original="book.txt"`) {
		t.Error("expected original attribute on file element")
	}
}
