package token

import "strings"

// Kind discriminates the token variants.
type Kind int

const (
	// KindOpen is an opening tag, including self-closing and declaration
	// forms (which carry no children).
	KindOpen Kind = iota
	// KindClose is a closing tag.
	KindClose
	// KindText is a run of non-whitespace text between tags.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindClose:
		return "close"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of a document. Exactly one of the tag fields
// (Name, Attr, SelfClosing) or Text is meaningful, depending on Kind.
type Token struct {
	Kind Kind

	// Name is the tag name for open and close tokens. It is empty for
	// text tokens and for declaration tags such as <?xml ...?>.
	Name string

	// Attr is the raw, uninterpreted attribute substring of an opening
	// tag, including its leading whitespace.
	Attr string

	// Text is the content of a text token, trimmed of leading and
	// trailing whitespace. Internal whitespace is preserved here and
	// collapsed only when rendering.
	Text string

	// SelfClosing marks tags that cannot have children: <topic/> as well
	// as prolog and doctype declarations.
	SelfClosing bool

	// Raw is the source form of the token: the full <...> span for tags,
	// the trimmed content for text.
	Raw string

	// Line is the 1-based source line on which the token starts. For
	// text tokens it is the line of the first non-whitespace character.
	Line int
}

// newTagToken classifies a <...> span. The span always starts with '<' and
// ends with '>'.
func newTagToken(span string, line int) Token {
	inner := span[1 : len(span)-1]

	if strings.HasPrefix(inner, "/") {
		return Token{
			Kind: KindClose,
			Name: tagName(inner[1:]),
			Raw:  span,
			Line: line,
		}
	}

	t := Token{Kind: KindOpen, Raw: span, Line: line}

	// Prolog (<?xml ...?>) and doctype (<!DOCTYPE ...>) declarations have
	// no children; treat them as self-closing with no name so the
	// validators skip them.
	if strings.HasPrefix(inner, "?") || strings.HasPrefix(inner, "!") {
		t.SelfClosing = true
		return t
	}

	if strings.HasSuffix(inner, "/") {
		t.SelfClosing = true
		inner = inner[:len(inner)-1]
	}

	t.Name = tagName(inner)
	t.Attr = inner[len(t.Name):]
	return t
}

// tagName extracts the leading tag name from tag contents: a letter or
// underscore followed by letters, digits, and underscores. An empty result
// means the span is not a named tag.
func tagName(inner string) string {
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return inner[:i]
		}
	}
	return inner
}
