package resolver

import (
	"github.com/roach88/fakery/internal/dictionary"
	"github.com/roach88/fakery/internal/errdefs"
	"github.com/roach88/fakery/internal/random"
)

// Selector collapses a raw dictionary value to one candidate string.
//
// Thread-safety: safe for concurrent use if the random source is.
type Selector struct {
	rnd random.Source
}

// NewSelector creates a Selector drawing from rnd.
func NewSelector(rnd random.Source) *Selector {
	return &Selector{rnd: rnd}
}

// Select returns one string for v:
//   - Literal: the literal itself
//   - Candidates: a uniformly chosen element
//   - CandidateGroups of Literals: a uniformly chosen member value
//   - CandidateGroups of CandidateGroups: a uniformly chosen member,
//     rendered in its flattened display form
//
// Any other group layout, an empty candidate set or a nil value fails with
// an UNSUPPORTED_VALUE_SHAPE error. Group names are never returned.
func (s *Selector) Select(v dictionary.RawValue) (string, error) {
	switch v := v.(type) {
	case dictionary.Literal:
		return string(v), nil

	case dictionary.Candidates:
		if len(v) == 0 {
			return "", errdefs.UnsupportedShape("empty Candidates")
		}
		return v[s.rnd.IntN(len(v))], nil

	case dictionary.CandidateGroups:
		candidates, err := groupCandidates(v)
		if err != nil {
			return "", err
		}
		return candidates[s.rnd.IntN(len(candidates))], nil

	default:
		return "", errdefs.UnsupportedShape(dictionary.ShapeName(v))
	}
}

// groupCandidates flattens a CandidateGroups value into its candidate list.
// All members must share one shape.
func groupCandidates(g dictionary.CandidateGroups) ([]string, error) {
	if len(g) == 0 {
		return nil, errdefs.UnsupportedShape("empty CandidateGroups")
	}

	out := make([]string, 0, len(g))
	switch g[0].Value.(type) {
	case dictionary.Literal:
		for _, m := range g {
			lit, ok := m.Value.(dictionary.Literal)
			if !ok {
				return nil, mixedGroups(m)
			}
			out = append(out, string(lit))
		}
	case dictionary.CandidateGroups:
		for _, m := range g {
			nested, ok := m.Value.(dictionary.CandidateGroups)
			if !ok {
				return nil, mixedGroups(m)
			}
			out = append(out, nested.String())
		}
	default:
		return nil, mixedGroups(g[0])
	}
	return out, nil
}

func mixedGroups(m dictionary.Group) error {
	return errdefs.UnsupportedShape("CandidateGroups member " + m.Name + " is " + dictionary.ShapeName(m.Value))
}
