package token

import "strings"

// Tokenize scans a document into an ordered token stream.
//
// Tags run from '<' to the next '>'. A trailing tag with no closing '>' is
// dropped and scanning stops; the structural validator reports that case
// from its own line scan. Text between tags is emitted trimmed, and runs
// consisting only of whitespace are discarded entirely.
func Tokenize(doc string) []Token {
	var tokens []Token
	line := 1

	for i := 0; i < len(doc); {
		if doc[i] == '<' {
			end := strings.IndexByte(doc[i:], '>')
			if end < 0 {
				// Unterminated trailing tag; nothing more to scan.
				break
			}
			span := doc[i : i+end+1]
			tokens = append(tokens, newTagToken(span, line))
			line += strings.Count(span, "\n")
			i += end + 1
			continue
		}

		next := strings.IndexByte(doc[i:], '<')
		if next < 0 {
			next = len(doc) - i
		}
		raw := doc[i : i+next]

		if text := strings.TrimSpace(raw); text != "" {
			lead := raw[:strings.Index(raw, text)]
			tokens = append(tokens, Token{
				Kind: KindText,
				Text: text,
				Raw:  text,
				Line: line + strings.Count(lead, "\n"),
			})
		}
		line += strings.Count(raw, "\n")
		i += next
	}

	return tokens
}

// CollapseWhitespace folds every whitespace run in s into a single space.
// Renderers apply this to text content; tokens themselves keep internal
// whitespace intact.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
