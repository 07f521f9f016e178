package analyzer

import "fmt"

// ParseError wraps a parse failure from the parser collaborator, surfaced
// to the caller verbatim.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// AnalysisError reports an invariant failure during the walk: a malformed
// AST node (a kind the walker does not recognize in a read context) or a
// recursion depth past WithMaxDepth. The alias-cycle guard in
// resolveAliasChain does not produce one; it returns the last node reached.
// These should not occur on valid ASTs; the type exists for defense.
type AnalysisError struct {
	Message string
	Offset  int
}

func (e *AnalysisError) Error() string {
	if e.Offset != 0 {
		return fmt.Sprintf("analysis error at offset %d: %s", e.Offset, e.Message)
	}
	return fmt.Sprintf("analysis error: %s", e.Message)
}

// NewAnalysisError constructs an AnalysisError positioned at offset.
func NewAnalysisError(offset int, format string, args ...interface{}) *AnalysisError {
	return &AnalysisError{Message: fmt.Sprintf(format, args...), Offset: offset}
}
