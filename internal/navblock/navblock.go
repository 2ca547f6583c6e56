// Package navblock locates sidebar navigation blocks in raw HTML without
// rewriting anything outside them.
package navblock

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Block is one <nav> element carrying the sidebar class.
type Block struct {
	Start, End int    // content[Start:End] spans the start tag through the matching </nav>
	Indent     string // whitespace before the start tag on its line
	EOL        string // line ending used around the block, "\n" or "\r\n"
	ActiveHref string // href of the first active link inside the block
	HasActive  bool
}

// Find returns every sidebar block in content, in document order. Nested
// <nav> elements are depth-counted, so the block ends at its own closing
// tag. An unterminated block is not returned.
func Find(content []byte, class string) []Block {
	z := html.NewTokenizer(bytes.NewReader(content))

	var (
		blocks []Block
		cur    *Block
		depth  int
		offset int
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return blocks
		}
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "nav":
				if tt == html.SelfClosingTagToken {
					continue
				}
				if cur != nil {
					depth++
					continue
				}
				if hasClass(attrs(z, hasAttr)["class"], class) {
					cur = &Block{Start: start, Indent: lineIndent(content, start), EOL: lineEnding(content, start)}
					depth = 1
				}
			case "a":
				if cur == nil || cur.HasActive {
					continue
				}
				a := attrs(z, hasAttr)
				if hasClass(a["class"], "active") {
					cur.ActiveHref = a["href"]
					cur.HasActive = true
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if cur == nil || string(name) != "nav" {
				continue
			}
			depth--
			if depth == 0 {
				cur.End = offset
				blocks = append(blocks, *cur)
				cur = nil
			}
		}
	}
}

// Active returns the first active href across blocks.
func Active(blocks []Block) (string, bool) {
	for _, b := range blocks {
		if b.HasActive {
			return b.ActiveHref, true
		}
	}
	return "", false
}

// Replace returns content with each block swapped for render(block).
// Blocks must be in document order and must not overlap.
func Replace(content []byte, blocks []Block, render func(Block) string) []byte {
	var out bytes.Buffer
	out.Grow(len(content))
	prev := 0
	for _, b := range blocks {
		out.Write(content[prev:b.Start])
		out.WriteString(render(b))
		prev = b.End
	}
	out.Write(content[prev:])
	return out.Bytes()
}

func attrs(z *html.Tokenizer, more bool) map[string]string {
	m := make(map[string]string)
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		k := string(key)
		if _, dup := m[k]; !dup {
			m[k] = string(val)
		}
	}
	return m
}

func hasClass(attr, class string) bool {
	for _, c := range strings.Fields(attr) {
		if c == class {
			return true
		}
	}
	return false
}

// lineIndent returns the leading whitespace of the line containing pos,
// or "" if anything other than spaces and tabs precedes pos on that line.
func lineIndent(content []byte, pos int) string {
	i := pos
	for i > 0 {
		c := content[i-1]
		if c == '\n' {
			break
		}
		if c != ' ' && c != '\t' {
			return ""
		}
		i--
	}
	return string(content[i:pos])
}

// lineEnding returns "\r\n" when the first line break at or after pos is
// CRLF, or when there is none after pos and the last one before it is.
func lineEnding(content []byte, pos int) string {
	if i := bytes.IndexByte(content[pos:], '\n'); i >= 0 {
		if i > 0 && content[pos+i-1] == '\r' {
			return "\r\n"
		}
		return "\n"
	}
	if i := bytes.LastIndexByte(content[:pos], '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
