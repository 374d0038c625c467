package resolver

import (
	"strings"

	"github.com/roach88/fakery/internal/random"
)

// NumeralWildcard is replaced by a random digit during numeral expansion.
const NumeralWildcard = '#'

// NumeralExpander replaces digit wildcards with random digits.
type NumeralExpander struct {
	rnd random.Source
}

// NewNumeralExpander creates a NumeralExpander drawing from rnd.
func NewNumeralExpander(rnd random.Source) *NumeralExpander {
	return &NumeralExpander{rnd: rnd}
}

// Expand returns s with every '#' replaced by a freshly drawn digit 0-9.
// All other characters pass through unchanged.
func (e *NumeralExpander) Expand(s string) string {
	if strings.IndexByte(s, NumeralWildcard) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == NumeralWildcard {
			c = byte('0' + e.rnd.IntN(10))
		}
		b.WriteByte(c)
	}
	return b.String()
}
