package resolver

import (
	"context"
	"slices"

	"github.com/roach88/fakery/internal/errdefs"
)

// DefaultMaxPasses is the default number of fixpoint passes allowed within
// one expansion.
const DefaultMaxPasses = 64

// DefaultMaxDepth is the default number of nested resolutions allowed below
// one top-level call.
const DefaultMaxDepth = 32

// frame is the expansion state carried through context.Context.
//
// Frames are immutable; enter returns a child context holding a new frame,
// so sibling placeholders and concurrent resolutions never share state.
type frame struct {
	chain []string // Active expansions, outermost first
}

type frameKey struct{}

func frameFrom(ctx context.Context) frame {
	f, _ := ctx.Value(frameKey{}).(frame)
	return f
}

// enter pushes link onto the expansion chain.
// Fails with a cyclic expression error once the chain exceeds maxDepth.
func enter(ctx context.Context, link string, maxDepth int) (context.Context, error) {
	parent := frameFrom(ctx)
	chain := append(slices.Clip(parent.chain), link)
	if len(chain) > maxDepth {
		return ctx, errdefs.CyclicExpression("expansion depth exceeded", chain, maxDepth)
	}
	return context.WithValue(ctx, frameKey{}, frame{chain: chain}), nil
}

// Chain returns the expansion chain active in ctx, outermost first.
// Empty outside of a resolution.
func Chain(ctx context.Context) []string {
	return slices.Clone(frameFrom(ctx).chain)
}

// passBudget counts fixpoint passes for one expansion.
type passBudget struct {
	max     int
	current int
}

// check counts one pass.
// Fails with a cyclic expression error when the budget is exhausted.
func (b *passBudget) check(ctx context.Context, expression string) error {
	b.current++
	if b.current > b.max {
		chain := append(Chain(ctx), expression)
		return errdefs.CyclicExpression("expansion did not reach a fixpoint", chain, b.max)
	}
	return nil
}
