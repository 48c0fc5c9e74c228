package validate

import (
	"fmt"
	"strings"

	"github.com/conneroisu/socialxml/internal/token"
)

// stackEntry records an opening tag awaiting its close.
type stackEntry struct {
	name string
	line int
}

// checkStructure enforces tag balance line by line with an explicit stack.
//
// A line containing '<' without '>' (or the reverse) is a syntax error and
// contributes no tags. Tags opened and closed on the same line cancel out
// locally; only the surplus reaches the document-wide stack. A mismatched
// closing tag is reported and the expected entry is still popped, so one
// mismatch does not cascade into unclosed-tag errors for every ancestor.
func checkStructure(doc string) []Error {
	var errs []Error
	var stack []stackEntry

	for i, line := range strings.Split(doc, "\n") {
		lineNum := i + 1

		hasOpen := strings.Contains(line, "<")
		hasClose := strings.Contains(line, ">")
		if hasOpen && !hasClose {
			errs = append(errs, Error{
				Line:        lineNum,
				Description: "Malformed tag: missing closing '>'",
				Kind:        KindSyntax,
			})
			continue
		}
		if hasClose && !hasOpen {
			errs = append(errs, Error{
				Line:        lineNum,
				Description: "Malformed tag: missing opening '<'",
				Kind:        KindSyntax,
			})
			continue
		}

		stack, errs = scanLineTags(line, lineNum, stack, errs)
	}

	// Anything still open at end of input never got its closing tag.
	for _, entry := range stack {
		errs = append(errs, Error{
			Line:        entry.line,
			Description: fmt.Sprintf("Unclosed tag '<%s>'", entry.name),
			Kind:        KindStructure,
		})
	}

	return errs
}

// scanLineTags processes one line's tags against the document stack. Pairs
// completed within the line are matched locally and never touch it.
func scanLineTags(line string, lineNum int, stack []stackEntry, errs []Error) ([]stackEntry, []Error) {
	var local []stackEntry

	for _, t := range token.Tokenize(line) {
		switch {
		case t.Kind == token.KindOpen && t.Name != "" && !t.SelfClosing:
			local = append(local, stackEntry{name: t.Name, line: lineNum})

		case t.Kind == token.KindClose && t.Name != "":
			if len(local) > 0 {
				top := local[len(local)-1]
				local = local[:len(local)-1]
				if top.name != t.Name {
					errs = append(errs, Error{
						Line:        lineNum,
						Description: fmt.Sprintf("Mismatched tags: expected '</%s>' but found '</%s>'", top.name, t.Name),
						Kind:        KindStructure,
					})
				}
				continue
			}

			if len(stack) == 0 {
				errs = append(errs, Error{
					Line:        lineNum,
					Description: fmt.Sprintf("Closing tag '</%s>' without matching opening tag", t.Name),
					Kind:        KindStructure,
				})
				continue
			}

			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.name != t.Name {
				errs = append(errs, Error{
					Line:        lineNum,
					Description: fmt.Sprintf("Mismatched tags: expected '</%s>' but found '</%s>'", top.name, t.Name),
					Kind:        KindStructure,
				})
			}
		}
	}

	return append(stack, local...), errs
}
