package validate

import (
	"fmt"
	"sort"
)

// ErrorKind classifies a validation finding.
type ErrorKind string

const (
	// KindSyntax covers malformed tags, such as a '<' with no '>'.
	KindSyntax ErrorKind = "syntax"
	// KindStructure covers tag-balance violations: mismatched, unmatched,
	// and unclosed tags.
	KindStructure ErrorKind = "structure"
	// KindSemantic covers schema rules: duplicate ids, empty required
	// fields, and dangling follower references.
	KindSemantic ErrorKind = "semantic"
)

// Error is one validation finding, immutable once constructed.
type Error struct {
	Line        int       `json:"line"`
	Description string    `json:"description"`
	Kind        ErrorKind `json:"type"`
}

func (e Error) String() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Description)
}

// Result is the combined outcome of structural and semantic validation.
type Result struct {
	IsValid    bool    `json:"is_valid"`
	ErrorCount int     `json:"error_count"`
	Errors     []Error `json:"errors"`
}

// newResult sorts errors by line, keeping discovery order on ties.
func newResult(errs []Error) Result {
	if errs == nil {
		errs = []Error{}
	}
	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].Line < errs[j].Line
	})
	return Result{
		IsValid:    len(errs) == 0,
		ErrorCount: len(errs),
		Errors:     errs,
	}
}
