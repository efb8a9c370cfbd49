package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolres/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolres/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolres/internal/adapters/host"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolres/internal/adapters/lockfile"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolres/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolres/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/toolres/internal/core/ports"
)

// NodeID is the unique identifier for the project tools resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*ProjectToolsResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.LocatorNodeID,
			fs.PathsNodeID,
			lockfile.NodeID,
			host.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*ProjectToolsResolver, error) {
			projects, err := graft.Dep[ports.ProjectReader](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.ToolLocator](ctx)
			if err != nil {
				return nil, err
			}

			paths, err := graft.Dep[ports.ToolPathCalculator](ctx)
			if err != nil {
				return nil, err
			}

			locks, err := graft.Dep[ports.LockFileReader](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[ports.CommandSpecFactory](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewProjectToolsResolver(projects, locator, paths, locks, factory, tracer, log), nil
		},
	})
}
