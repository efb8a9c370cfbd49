package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolres/internal/core/ports"
)

// NodeID is the unique identifier for the lock file reader Graft node.
const NodeID graft.ID = "adapter.lockfile"

func init() {
	graft.Register(graft.Node[ports.LockFileReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockFileReader, error) {
			return NewReader(), nil
		},
	})
}
