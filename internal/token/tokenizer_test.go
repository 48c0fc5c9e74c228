package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeSimpleDocument(t *testing.T) {
	tokens := Tokenize("<user><id>1</id></user>")

	require.Len(t, tokens, 5)

	assert.Equal(t, KindOpen, tokens[0].Kind)
	assert.Equal(t, "user", tokens[0].Name)
	assert.Equal(t, KindOpen, tokens[1].Kind)
	assert.Equal(t, "id", tokens[1].Name)
	assert.Equal(t, KindText, tokens[2].Kind)
	assert.Equal(t, "1", tokens[2].Text)
	assert.Equal(t, KindClose, tokens[3].Kind)
	assert.Equal(t, "id", tokens[3].Name)
	assert.Equal(t, KindClose, tokens[4].Kind)
	assert.Equal(t, "user", tokens[4].Name)
}

func TestTokenizeWhitespaceOnlyTextDiscarded(t *testing.T) {
	tokens := Tokenize("<user>\n    \n</user>")

	require.Len(t, tokens, 2)
	assert.Equal(t, KindOpen, tokens[0].Kind)
	assert.Equal(t, KindClose, tokens[1].Kind)
}

func TestTokenizeTextTrimmedNotCollapsed(t *testing.T) {
	tokens := Tokenize("<body>  hello\n  world  </body>")

	require.Len(t, tokens, 3)
	// Trimmed at the edges, internal whitespace kept for render time.
	assert.Equal(t, "hello\n  world", tokens[1].Text)
}

func TestTokenizeLineNumbers(t *testing.T) {
	doc := "<users>\n<user>\n<id>\n7\n</id>\n</user>\n</users>"
	tokens := Tokenize(doc)

	require.Len(t, tokens, 7)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
	assert.Equal(t, 4, tokens[3].Line) // text line, not the line of <id>
	assert.Equal(t, 5, tokens[4].Line)
	assert.Equal(t, 7, tokens[6].Line)
}

func TestTokenizeSelfClosingTag(t *testing.T) {
	tokens := Tokenize("<user><posts/></user>")

	require.Len(t, tokens, 3)
	assert.Equal(t, KindOpen, tokens[1].Kind)
	assert.Equal(t, "posts", tokens[1].Name)
	assert.True(t, tokens[1].SelfClosing)
}

func TestTokenizeDeclarationHasNoName(t *testing.T) {
	tokens := Tokenize(`<?xml version="1.0" encoding="UTF-8"?><users></users>`)

	require.Len(t, tokens, 3)
	assert.Equal(t, KindOpen, tokens[0].Kind)
	assert.Empty(t, tokens[0].Name)
	assert.True(t, tokens[0].SelfClosing)
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`, tokens[0].Raw)
}

func TestTokenizeAttributesPreservedRaw(t *testing.T) {
	tokens := Tokenize(`<user id="1" active="true"></user>`)

	require.Len(t, tokens, 2)
	assert.Equal(t, "user", tokens[0].Name)
	assert.Equal(t, ` id="1" active="true"`, tokens[0].Attr)
	assert.Equal(t, `<user id="1" active="true">`, tokens[0].Raw)
}

func TestTokenizeUnterminatedTrailingTagDropped(t *testing.T) {
	tokens := Tokenize("<user><id>1</id></user><nam")

	require.Len(t, tokens, 5)
	assert.Equal(t, "user", tokens[4].Name)
}

func TestTokenizeEmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \n\t  "))
}

func TestCollapseWhitespace(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{"already collapsed", "a b c", "a b c"},
		{"newlines and tabs", "a\n\t b\n\nc", "a b c"},
		{"leading and trailing", "  a  ", "a"},
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CollapseWhitespace(tc.in))
		})
	}
}
