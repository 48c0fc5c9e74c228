package render

import (
	"strings"

	"github.com/conneroisu/socialxml/internal/token"
)

const (
	// DefaultIndentWidth is the number of spaces per nesting level.
	DefaultIndentWidth = 4
	// DefaultWrapWidth is the maximum width of leaf text before it is
	// wrapped onto its own indented lines.
	DefaultWrapWidth = 80
)

// Formatter pretty-prints documents. The zero value uses the default
// indent and wrap widths.
type Formatter struct {
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int
	// WrapWidth bounds leaf text, excluding indentation. Leaf text at or
	// under the bound renders inline with its tags.
	WrapWidth int
}

// Format pretty-prints a document with the default settings.
func Format(doc string) string {
	return Formatter{}.Format(doc)
}

// Format reconstructs the document with one element per line, leaf
// elements collapsed, and long leaf text word-wrapped one level deeper.
// The result carries no trailing newline. Formatting is idempotent:
// formatting already-formatted output reproduces it exactly.
func (f Formatter) Format(doc string) string {
	indentWidth := f.IndentWidth
	if indentWidth <= 0 {
		indentWidth = DefaultIndentWidth
	}
	wrapWidth := f.WrapWidth
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}
	unit := strings.Repeat(" ", indentWidth)

	tokens := token.Tokenize(doc)
	var lines []string
	level := 0

	indent := func(n int) string {
		if n < 0 {
			n = 0
		}
		return strings.Repeat(unit, n)
	}

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]

		switch t.Kind {
		case token.KindClose:
			level--
			if level < 0 {
				level = 0
			}
			lines = append(lines, indent(level)+t.Raw)

		case token.KindOpen:
			if t.SelfClosing {
				lines = append(lines, indent(level)+t.Raw)
				continue
			}

			if open, closing, text, ok := leafAt(tokens, i); ok {
				if len(text) <= wrapWidth {
					lines = append(lines, indent(level)+open.Raw+text+closing.Raw)
				} else {
					lines = append(lines, indent(level)+open.Raw)
					for _, segment := range wrapWords(text, wrapWidth) {
						lines = append(lines, indent(level+1)+segment)
					}
					lines = append(lines, indent(level)+closing.Raw)
				}
				i += 2
				continue
			}

			lines = append(lines, indent(level)+t.Raw)
			level++

		case token.KindText:
			// Mixed-content fallback: align each non-empty line of the
			// text at the current level.
			for _, part := range strings.Split(t.Text, "\n") {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					lines = append(lines, indent(level)+trimmed)
				}
			}
		}
	}

	return strings.Join(lines, "\n")
}

// leafAt reports whether the open tag at index i is a leaf: exactly one
// text token followed by the matching closing tag. The returned text has
// its whitespace collapsed.
func leafAt(tokens []token.Token, i int) (open, closing token.Token, text string, ok bool) {
	if i+2 >= len(tokens) {
		return token.Token{}, token.Token{}, "", false
	}
	open = tokens[i]
	if tokens[i+1].Kind != token.KindText {
		return token.Token{}, token.Token{}, "", false
	}
	closing = tokens[i+2]
	if closing.Kind != token.KindClose || closing.Name != open.Name {
		return token.Token{}, token.Token{}, "", false
	}
	return open, closing, token.CollapseWhitespace(tokens[i+1].Text), true
}

// wrapWords greedily packs words into lines no wider than width. A single
// word longer than the width gets its own over-width line rather than
// being split.
func wrapWords(text string, width int) []string {
	var lines []string
	var current strings.Builder

	for _, word := range strings.Fields(text) {
		switch {
		case current.Len() == 0:
			current.WriteString(word)
		case current.Len()+1+len(word) <= width:
			current.WriteByte(' ')
			current.WriteString(word)
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}
