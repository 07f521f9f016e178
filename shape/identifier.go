// Package shape holds the Tracker's data model: identifiers, paths, and the
// classification buckets the analyzer reasons over.
package shape

import "strings"

// Identifier is an unqualified name appearing in a template.
type Identifier string

// Path is an ordered, non-empty sequence of segments rooted at an Identifier.
// Path[0] is always the root; Path[1:] are attribute/string-subscript segments.
type Path []string

// Root returns the Identifier the path is rooted at.
func (p Path) Root() Identifier {
	if len(p) == 0 {
		return ""
	}
	return Identifier(p[0])
}

// Suffix returns the segments after the root, or nil for a bare identifier path.
func (p Path) Suffix() []string {
	if len(p) <= 1 {
		return nil
	}
	return p[1:]
}

// String renders the path as a dotted string, e.g. "user.address.city".
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Kind classifies an Identifier exactly one way.
type Kind string

const (
	// External is first observed as a read from the render context.
	External Kind = "external"
	// Internal is first observed as the target of a set whose RHS is not a bare identifier.
	Internal Kind = "internal"
	// Alias is first observed as the target of `set target = source` with a bare identifier source.
	Alias Kind = "alias"
	// LoopVar is introduced by `for target in iter`.
	LoopVar Kind = "loopvar"
)
