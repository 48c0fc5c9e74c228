package validate

import (
	"strings"

	"github.com/conneroisu/socialxml/internal/token"
)

// Validate runs structural and semantic validation over one document and
// merges the findings into a single line-sorted result. All state is local
// to the call, so documents may be validated concurrently.
func Validate(doc string) Result {
	if strings.TrimSpace(doc) == "" {
		return newResult([]Error{{
			Line:        1,
			Description: "No XML content to validate",
			Kind:        KindStructure,
		}})
	}

	tokens := token.Tokenize(doc)

	errs := checkStructure(doc)
	errs = append(errs, checkSemantics(tokens, collectUserIDs(tokens))...)

	return newResult(errs)
}
