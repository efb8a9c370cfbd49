package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolres/internal/adapters/logger"
	"go.trai.ch/toolres/internal/adapters/telemetry"
	"go.trai.ch/toolres/internal/core/ports"
)

// NodeID is the unique identifier for the PATH resolver Graft node.
const NodeID graft.ID = "adapter.shell.path_resolver"

func init() {
	graft.Register(graft.Node[*PathResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*PathResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewPathResolver(log, tracer), nil
		},
	})
}
