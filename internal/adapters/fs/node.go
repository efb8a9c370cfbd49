package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolres/internal/adapters/settings"
	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// PathsNodeID is the unique identifier for the path calculator Graft node.
	PathsNodeID graft.ID = "adapter.fs.paths"
	// LocatorNodeID is the unique identifier for the tool locator Graft node.
	LocatorNodeID graft.ID = "adapter.fs.locator"
)

func init() {
	graft.Register(graft.Node[ports.ToolPathCalculator]{
		ID:        PathsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.ToolPathCalculator, error) {
			s, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewPathCalculator(s.PackagesRoot, s.ToolsDir, s.DepsSuffix), nil
		},
	})

	graft.Register(graft.Node[ports.ToolLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID, PathsNodeID},
		Run: func(ctx context.Context) (ports.ToolLocator, error) {
			s, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			paths, err := graft.Dep[ports.ToolPathCalculator](ctx)
			if err != nil {
				return nil, err
			}
			fw, err := domain.ParseFramework(s.ToolFramework)
			if err != nil {
				return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
			}
			return NewLocator(paths, fw), nil
		},
	})
}
