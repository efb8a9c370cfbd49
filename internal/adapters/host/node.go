package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolres/internal/adapters/manifest"
	"go.trai.ch/toolres/internal/adapters/settings"
	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports"
)

// NodeID is the unique identifier for the command spec factory Graft node.
const NodeID graft.ID = "adapter.host"

func init() {
	graft.Register(graft.Node[ports.CommandSpecFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID, manifest.NodeID},
		Run: func(ctx context.Context) (ports.CommandSpecFactory, error) {
			s, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			manifests, err := graft.Dep[ports.ManifestGenerator](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(manifests, s.HostName, WithHostPath(s.HostPath)), nil
		},
	})
}
