package analyzer

// Option configures an Analyzer, in the functional-options idiom.
type Option func(*Analyzer)

// WithMaxDepth caps AST recursion depth. Exceeding it yields an
// AnalysisError rather than a stack overflow; well-formed templates never
// approach it.
func WithMaxDepth(n int) Option {
	return func(a *Analyzer) {
		a.maxDepth = n
	}
}

// WithStrict additionally records a Note (see Notes on TemplateAnalysis)
// whenever a `for` statement's iterable cannot be canonicalized. This never
// turns into a hard error: a missing attribute in the synthesized skeleton
// is strictly worse than an extra one omitted.
func WithStrict(strict bool) Option {
	return func(a *Analyzer) {
		a.strict = strict
	}
}

const defaultMaxDepth = 500
