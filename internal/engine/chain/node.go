package chain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolres/internal/adapters/shell" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolres/internal/core/ports"
	"go.trai.ch/toolres/internal/engine/resolver"
)

// NodeID is the unique identifier for the resolver chain Graft node.
const NodeID graft.ID = "engine.chain"

func init() {
	graft.Register(graft.Node[ports.CommandResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{resolver.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.CommandResolver, error) {
			projectTools, err := graft.Dep[*resolver.ProjectToolsResolver](ctx)
			if err != nil {
				return nil, err
			}

			path, err := graft.Dep[*shell.PathResolver](ctx)
			if err != nil {
				return nil, err
			}

			return New(projectTools, path), nil
		},
	})
}
