package backend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fbgen/internal/adapters/logger"
	"go.trai.ch/fbgen/internal/core/ports"
)

// NodeID is the unique identifier for the backend runner Graft node.
const NodeID graft.ID = "adapter.backend_runner"

func init() {
	graft.Register(graft.Node[ports.BackendRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BackendRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
