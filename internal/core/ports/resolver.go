package ports

import (
	"context"

	"go.trai.ch/toolres/internal/core/domain"
)

//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks

// CommandResolver turns a request into a runnable command.
type CommandResolver interface {
	// Resolve returns false when the resolver has nothing for the request.
	Resolve(ctx context.Context, req domain.ResolutionRequest) (domain.CommandSpec, bool, error)
}

// CommandSpecFactory builds the invocation of a restored tool.
type CommandSpecFactory interface {
	Build(tool domain.ToolIdentity, assets domain.ToolAssets, args []string) (domain.CommandSpec, error)
}
