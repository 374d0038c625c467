package dictionary

import (
	"strings"
)

// RawValue is a sealed interface over the shapes a dictionary entry can take.
// Only Literal, Candidates and CandidateGroups implement it.
//
// The shape is decided once when a source is decoded; resolution code
// switches on the concrete type instead of probing untyped data.
type RawValue interface {
	rawValue() // Sealed

	// String returns the display form used when a nested group has to be
	// flattened into a candidate string.
	String() string
}

// Literal is a single string value.
type Literal string

func (Literal) rawValue() {}

func (l Literal) String() string {
	return string(l)
}

// Candidates is an ordered list of alternative strings.
type Candidates []string

func (Candidates) rawValue() {}

// String renders the list as "[a, b, c]".
func (c Candidates) String() string {
	return "[" + strings.Join(c, ", ") + "]"
}

// Group is one named member of a CandidateGroups value.
type Group struct {
	Name  string
	Value RawValue
}

// CandidateGroups is an ordered mapping from group name to a member value.
// Members are usually Literals (keyed variants) or nested CandidateGroups
// (variant trees); other member shapes are representable so the selector can
// reject them with a precise error.
type CandidateGroups []Group

func (CandidateGroups) rawValue() {}

// String renders the groups as "{a=x, b=[p, q], c={d=y}}".
func (g CandidateGroups) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, m := range g {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.Name)
		b.WriteByte('=')
		if m.Value != nil {
			b.WriteString(m.Value.String())
		}
	}
	b.WriteByte('}')
	return b.String()
}

// G is a shorthand for Group, for ergonomic construction.
// Example: CandidateGroups{G("home", Literal("###-####")), G("cell", Literal("5##-####"))}
func G(name string, value RawValue) Group {
	return Group{Name: name, Value: value}
}

// ShapeName returns the name of v's shape, for diagnostics.
func ShapeName(v RawValue) string {
	switch v.(type) {
	case Literal:
		return "Literal"
	case Candidates:
		return "Candidates"
	case CandidateGroups:
		return "CandidateGroups"
	case nil:
		return "nil"
	default:
		return "unknown"
	}
}
