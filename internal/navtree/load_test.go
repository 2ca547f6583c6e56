package navtree

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleNav = `
nested_dir: guides
top:
  - label: Home
    href: index.html
sections:
  - title: Guides
    links:
      - label: Setup
        href: guides/setup.html
      - label: "↳ Advanced"
        href: guides/advanced.html
        indent: 1
skip:
  - guides/custom.html
`

func TestParse(t *testing.T) {
	tree, err := Parse([]byte(sampleNav))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.NestedDir != "guides" {
		t.Errorf("expected nested dir %q, got %q", "guides", tree.NestedDir)
	}
	if len(tree.Sections) != 1 || len(tree.Sections[0].Links) != 2 {
		t.Fatalf("unexpected sections: %+v", tree.Sections)
	}
	if tree.Sections[0].Links[1].Indent != 1 {
		t.Error("expected second link to be indented")
	}
	if !tree.Skipped("guides/custom.html") {
		t.Error("expected guides/custom.html to be skipped")
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("top: [")); err == nil {
		t.Error("expected yaml error")
	}
	if _, err := Parse([]byte("top: []\n")); err == nil {
		t.Error("expected validation error for empty tree")
	}
}

func TestLoadFile_MarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "nav.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	tree, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := tree.Render(Nested, "stack.html", ""), Default().Render(Nested, "stack.html", ""); got != want {
		t.Error("expected loaded tree to render like the default")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
