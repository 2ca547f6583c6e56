package navtree

import (
	"strings"

	"golang.org/x/net/html"
)

// ClassName is the class that identifies the sidebar container.
const ClassName = "sidebar-nav"

const step = "  "

// Render writes the sidebar block for a page of variant v. The link whose
// key equals activeKey gets the active class; an empty or unknown key
// renders the plain template. indent is the whitespace preceding the
// opening tag on its line and is applied to every following line, so the
// block re-renders identically in place.
func (t *Tree) Render(v Variant, activeKey, indent string) string {
	var b strings.Builder
	b.WriteString(`<nav class="` + ClassName + `">` + "\n")

	for _, l := range t.Top {
		t.writeLink(&b, l, v, activeKey, indent+step)
	}

	for _, s := range t.Sections {
		b.WriteString("\n")
		b.WriteString(indent + step + "<!-- " + comment(s.Title) + " -->\n")
		b.WriteString(indent + step + `<details class="nav-section">` + "\n")
		b.WriteString(indent + step + step + `<summary class="nav-section-title">` + html.EscapeString(s.Title) + "</summary>\n")
		for _, l := range s.Links {
			t.writeLink(&b, l, v, activeKey, indent+step+step)
		}
		b.WriteString(indent + step + "</details>\n")
	}

	b.WriteString(indent + "</nav>")
	return b.String()
}

func (t *Tree) writeLink(b *strings.Builder, l Link, v Variant, activeKey, indent string) {
	class := "nav-item"
	if l.Indent > 0 {
		class += " indent"
	}
	if activeKey != "" && t.Key(l.Href) == activeKey {
		class += " active"
	}
	b.WriteString(indent)
	b.WriteString(`<a href="` + html.EscapeString(t.Href(l, v)) + `" class="` + class + `">`)
	b.WriteString(html.EscapeString(l.Label))
	b.WriteString("</a>\n")
}

// comment keeps a section title from closing the HTML comment early.
func comment(s string) string {
	return strings.ReplaceAll(s, "--", "- -")
}
