package navblock

import (
	"strings"
	"testing"
)

const page = `<html>
<body>
  <aside>
      <nav class="sidebar-nav">
        <a href="index.html" class="nav-item">Home</a>
        <a href="stack.html" class="nav-item active">Stacks</a>
      </nav>
  </aside>
  <nav class="top-bar"><a href="x.html" class="active">X</a></nav>
</body>
</html>
`

func TestFind_Basic(t *testing.T) {
	blocks := Find([]byte(page), "sidebar-nav")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	got := page[b.Start:b.End]
	if !strings.HasPrefix(got, `<nav class="sidebar-nav">`) || !strings.HasSuffix(got, "</nav>") {
		t.Errorf("unexpected block span: %q", got)
	}
	if strings.Contains(got, "top-bar") {
		t.Error("block must not extend into the next nav")
	}
	if b.Indent != "      " {
		t.Errorf("expected 6-space indent, got %q", b.Indent)
	}
	if !b.HasActive || b.ActiveHref != "stack.html" {
		t.Errorf("expected active href stack.html, got %q (%v)", b.ActiveHref, b.HasActive)
	}
}

func TestFind_NestedNav(t *testing.T) {
	src := `<nav class="nav sidebar-nav"><nav class="inner"><a href="a.html">A</a></nav><a href="b.html" class="nav-item indent active">B</a></nav><p>after</p>`
	blocks := Find([]byte(src), "sidebar-nav")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	got := src[blocks[0].Start:blocks[0].End]
	if !strings.HasSuffix(got, `B</a></nav>`) {
		t.Errorf("expected block to end at its own closing tag, got %q", got)
	}
	if blocks[0].ActiveHref != "b.html" {
		t.Errorf("expected active b.html, got %q", blocks[0].ActiveHref)
	}
	if blocks[0].Indent != "" {
		t.Errorf("expected empty indent, got %q", blocks[0].Indent)
	}
}

func TestFind_IgnoresScriptAndComments(t *testing.T) {
	src := `<script>var s = '<nav class="sidebar-nav">';</script>
<!-- <nav class="sidebar-nav"></nav> -->
<nav class="sidebar-nav"><a href="(a+).html" class="nav-item active">A</a></nav>`
	blocks := Find([]byte(src), "sidebar-nav")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if !strings.HasPrefix(src[blocks[0].Start:], `<nav class="sidebar-nav"><a`) {
		t.Errorf("unexpected block start: %q", src[blocks[0].Start:])
	}
	if blocks[0].ActiveHref != "(a+).html" {
		t.Errorf("expected href with regex characters, got %q", blocks[0].ActiveHref)
	}
}

func TestFind_None(t *testing.T) {
	for _, src := range []string{
		"",
		"<html><body><p>no nav</p></body></html>",
		`<nav class="sidebar-nav"><a href="a.html">unterminated`,
	} {
		if blocks := Find([]byte(src), "sidebar-nav"); len(blocks) != 0 {
			t.Errorf("expected no blocks for %q, got %d", src, len(blocks))
		}
	}
}

func TestFind_EntityInHref(t *testing.T) {
	src := `<nav class="sidebar-nav"><a href="q&amp;a.html" class="active">QA</a></nav>`
	blocks := Find([]byte(src), "sidebar-nav")
	if len(blocks) != 1 || blocks[0].ActiveHref != "q&a.html" {
		t.Fatalf("expected unescaped href q&a.html, got %+v", blocks)
	}
}

func TestActive(t *testing.T) {
	blocks := []Block{{}, {ActiveHref: "b.html", HasActive: true}, {ActiveHref: "c.html", HasActive: true}}
	href, ok := Active(blocks)
	if !ok || href != "b.html" {
		t.Errorf("expected b.html, got %q (%v)", href, ok)
	}
	if _, ok := Active(nil); ok {
		t.Error("expected no active href for no blocks")
	}
}

func TestReplace(t *testing.T) {
	src := []byte("before<nav class=\"sidebar-nav\">old</nav>middle<nav class=\"sidebar-nav\">old2</nav>after")
	blocks := Find(src, "sidebar-nav")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	out := Replace(src, blocks, func(Block) string { return "<NEW>" })
	if string(out) != "before<NEW>middle<NEW>after" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestReplace_NoBlocks(t *testing.T) {
	src := []byte("<p>unchanged</p>")
	if out := Replace(src, nil, func(Block) string { return "x" }); string(out) != string(src) {
		t.Errorf("expected content unchanged, got %q", out)
	}
}

func TestFind_LineEnding(t *testing.T) {
	cases := map[string]string{
		"<body>\n  <nav class=\"sidebar-nav\">\n</nav>\n":       "\n",
		"<body>\r\n  <nav class=\"sidebar-nav\">\r\n</nav>\r\n": "\r\n",
		"<body>\r\n<nav class=\"sidebar-nav\"></nav>":           "\r\n",
		`<nav class="sidebar-nav"></nav>`:                       "\n",
	}
	for src, want := range cases {
		blocks := Find([]byte(src), "sidebar-nav")
		if len(blocks) != 1 {
			t.Fatalf("expected 1 block in %q, got %d", src, len(blocks))
		}
		if blocks[0].EOL != want {
			t.Errorf("%q: expected EOL %q, got %q", src, want, blocks[0].EOL)
		}
	}
}
