package validate

import (
	"fmt"

	"github.com/conneroisu/socialxml/internal/token"
)

// reference is a follower/following id waiting for the deferred check
// against the collected set of declared user ids.
type reference struct {
	id   string
	line int
}

// collectUserIDs is the first semantic pass: every <id> leaf directly
// inside a <user> element contributes its value to the set, duplicates and
// all. Later occurrences of a duplicated id are reported by the second
// pass, but the value itself still resolves references.
func collectUserIDs(tokens []token.Token) map[string]struct{} {
	ids := make(map[string]struct{})
	walkIDLeaves(tokens, func(parent, id string, _ int) {
		if parent == "user" && id != "" {
			ids[id] = struct{}{}
		}
	})
	return ids
}

// checkSemantics is the second pass: id uniqueness, required-field
// presence, and referential integrity of follower/following ids.
func checkSemantics(tokens []token.Token, allIDs map[string]struct{}) []Error {
	var errs []Error
	var refs []reference
	seen := make(map[string]struct{})

	walkIDLeaves(tokens, func(parent, id string, line int) {
		switch {
		case id == "":
			errs = append(errs, Error{
				Line:        line,
				Description: "Empty user ID",
				Kind:        KindSemantic,
			})
		case parent == "user":
			if _, dup := seen[id]; dup {
				errs = append(errs, Error{
					Line:        line,
					Description: fmt.Sprintf("Duplicate user ID '%s'", id),
					Kind:        KindSemantic,
				})
			} else {
				seen[id] = struct{}{}
			}
		case parent == "follower", parent == "following":
			refs = append(refs, reference{id: id, line: line})
		}
	})

	errs = append(errs, checkEmptyFields(tokens)...)

	// Deferred reference check against the ids gathered in pass one.
	for _, ref := range refs {
		if _, ok := allIDs[ref.id]; !ok {
			errs = append(errs, Error{
				Line:        ref.line,
				Description: fmt.Sprintf("Invalid follower reference: user ID '%s' does not exist", ref.id),
				Kind:        KindSemantic,
			})
		}
	}

	return errs
}

// walkIDLeaves walks the token stream with a tag stack and invokes fn for
// every <id> leaf that has at least one enclosing element. The parent is
// the element immediately enclosing the leaf; the id value is the leaf's
// text with whitespace collapsed, or "" when the element is empty.
func walkIDLeaves(tokens []token.Token, fn func(parent, id string, line int)) {
	var stack []string

	for i, t := range tokens {
		switch t.Kind {
		case token.KindOpen:
			if t.Name == "" || t.SelfClosing {
				continue
			}
			if t.Name == "id" && len(stack) > 0 {
				if id, ok := leafValue(tokens, i); ok {
					fn(stack[len(stack)-1], id, t.Line)
				}
			}
			stack = append(stack, t.Name)

		case token.KindClose:
			// Pop unconditionally so a stray close cannot desync the
			// walk; balance violations are the structural validator's
			// concern.
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
}

// leafValue returns the collapsed text of the leaf opened at index i, or
// "" when the matching close follows immediately. The second return is
// false when the element at i has non-text children and is not a leaf.
func leafValue(tokens []token.Token, i int) (string, bool) {
	open := tokens[i]
	if i+1 < len(tokens) && tokens[i+1].Kind == token.KindClose && tokens[i+1].Name == open.Name {
		return "", true
	}
	if i+2 < len(tokens) &&
		tokens[i+1].Kind == token.KindText &&
		tokens[i+2].Kind == token.KindClose && tokens[i+2].Name == open.Name {
		return token.CollapseWhitespace(tokens[i+1].Text), true
	}
	return "", false
}

// checkEmptyFields reports <name> and <body> elements with no content.
// Whitespace-only content was already discarded by the tokenizer, so an
// empty element is an open tag immediately followed by its close.
func checkEmptyFields(tokens []token.Token) []Error {
	var errs []Error

	for i, t := range tokens {
		if t.Kind != token.KindOpen || t.SelfClosing {
			continue
		}
		if i+1 >= len(tokens) || tokens[i+1].Kind != token.KindClose || tokens[i+1].Name != t.Name {
			continue
		}
		switch t.Name {
		case "name":
			errs = append(errs, Error{
				Line:        t.Line,
				Description: "Empty user name",
				Kind:        KindSemantic,
			})
		case "body":
			errs = append(errs, Error{
				Line:        t.Line,
				Description: "Empty post body",
				Kind:        KindSemantic,
			})
		}
	}

	return errs
}
