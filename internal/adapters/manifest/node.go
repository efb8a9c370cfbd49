package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolres/internal/adapters/logger"
	"go.trai.ch/toolres/internal/core/ports"
)

// NodeID is the unique identifier for the manifest generator Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.ManifestGenerator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ManifestGenerator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(log), nil
		},
	})
}
