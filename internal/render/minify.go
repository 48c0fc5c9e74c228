package render

import (
	"strings"

	"github.com/conneroisu/socialxml/internal/token"
)

// Minify renders a document in its canonical compact form: token source
// forms concatenated with no separators. Text content keeps only single
// spaces between words, so minifying formatted output and minifying the
// original yield the same string.
func Minify(doc string) string {
	var b strings.Builder

	for _, t := range token.Tokenize(doc) {
		if t.Kind == token.KindText {
			b.WriteString(token.CollapseWhitespace(t.Text))
			continue
		}
		b.WriteString(t.Raw)
	}

	return b.String()
}
