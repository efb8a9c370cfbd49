// Package chain tries command resolvers in order.
package chain

import (
	"context"

	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports"
)

// Chain is an ordered list of resolvers. The first resolver reporting a match wins.
type Chain struct {
	resolvers []ports.CommandResolver
}

// New creates a Chain trying resolvers in the given order.
func New(resolvers ...ports.CommandResolver) *Chain {
	return &Chain{resolvers: resolvers}
}

// Resolve implements ports.CommandResolver. The first error stops the chain.
func (c *Chain) Resolve(ctx context.Context, req domain.ResolutionRequest) (domain.CommandSpec, bool, error) {
	for _, r := range c.resolvers {
		spec, ok, err := r.Resolve(ctx, req)
		if err != nil {
			return domain.CommandSpec{}, false, err
		}
		if ok {
			return spec, true, nil
		}
	}
	return domain.CommandSpec{}, false, nil
}
