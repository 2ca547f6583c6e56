package navtree

import (
	"fmt"
	"strings"
)

// Tree is the sidebar navigation of a site.
type Tree struct {
	Top       []Link    `yaml:"top"`        // Links rendered before any section (home)
	Sections  []Section `yaml:"sections"`   // Collapsible groups
	NestedDir string    `yaml:"nested_dir"` // Directory whose pages use parent-relative links
	Skip      []string  `yaml:"skip"`       // Slash-separated paths, relative to the site root
}

// Section is a collapsible group of links.
type Section struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

// Link is a single sidebar entry. Href is relative to the site root.
type Link struct {
	Label  string `yaml:"label"`
	Href   string `yaml:"href"`
	Indent int    `yaml:"indent,omitempty"` // 0 for top-level entries, >0 for sub-entries
}

// Variant selects how hrefs are written for the page being rendered.
type Variant int

const (
	Root   Variant = iota // page at the site root
	Nested                // page inside NestedDir
)

func (v Variant) String() string {
	if v == Nested {
		return "nested"
	}
	return "root"
}

// VariantFor returns the variant for a slash-separated path relative to the site root.
func (t *Tree) VariantFor(rel string) Variant {
	if t.NestedDir == "" {
		return Root
	}
	first, _, found := strings.Cut(rel, "/")
	if found && first == t.NestedDir {
		return Nested
	}
	return Root
}

// Href returns the link target as written on a page of the given variant.
// Nested pages drop the NestedDir prefix and step up one directory; the home
// link goes through the same rule.
func (t *Tree) Href(l Link, v Variant) string {
	if v == Root || external(l.Href) {
		return l.Href
	}
	h := l.Href
	if t.NestedDir != "" {
		h = strings.TrimPrefix(h, t.NestedDir+"/")
	}
	return "../" + h
}

// Key normalizes an href from either variant to the identity used for
// re-matching the active link.
func (t *Tree) Key(href string) string {
	h := strings.TrimSpace(href)
	if external(h) {
		return h
	}
	if i := strings.IndexAny(h, "?#"); i >= 0 {
		h = h[:i]
	}
	for {
		switch {
		case strings.HasPrefix(h, "./"):
			h = h[2:]
		case strings.HasPrefix(h, "../"):
			h = h[3:]
		default:
			if t.NestedDir != "" {
				h = strings.TrimPrefix(h, t.NestedDir+"/")
			}
			return h
		}
	}
}

// Find returns the link whose key matches href.
func (t *Tree) Find(href string) (Link, bool) {
	key := t.Key(href)
	if key == "" {
		return Link{}, false
	}
	for _, l := range t.Links() {
		if t.Key(l.Href) == key {
			return l, true
		}
	}
	return Link{}, false
}

// Links returns every link in render order.
func (t *Tree) Links() []Link {
	links := append([]Link(nil), t.Top...)
	for _, s := range t.Sections {
		links = append(links, s.Links...)
	}
	return links
}

// Skipped reports whether rel is in the skip set.
func (t *Tree) Skipped(rel string) bool {
	for _, s := range t.Skip {
		if s == rel {
			return true
		}
	}
	return false
}

// Validate checks that every link is usable and that link keys are unique,
// since active-link matching depends on it.
func (t *Tree) Validate() error {
	if strings.Contains(t.NestedDir, "/") {
		return fmt.Errorf("nested_dir %q must be a single path segment", t.NestedDir)
	}
	if len(t.Links()) == 0 {
		return fmt.Errorf("navigation has no links")
	}
	seen := make(map[string]string)
	for _, l := range t.Links() {
		if l.Label == "" {
			return fmt.Errorf("link %q has no label", l.Href)
		}
		if l.Href == "" {
			return fmt.Errorf("link %q has no href", l.Label)
		}
		key := t.Key(l.Href)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("links %q and %q resolve to the same page %q", prev, l.Href, key)
		}
		seen[key] = l.Href
	}
	for _, s := range t.Sections {
		if s.Title == "" {
			return fmt.Errorf("section with %d links has no title", len(s.Links))
		}
	}
	return nil
}

func external(href string) bool {
	return strings.Contains(href, "://") ||
		strings.HasPrefix(href, "/") ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "mailto:")
}
