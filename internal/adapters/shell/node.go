package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fbgen/internal/adapters/logger"
	"go.trai.ch/fbgen/internal/core/ports"
)

// NodeID is the unique identifier for the local executor Graft node.
const NodeID graft.ID = "adapter.local_executor"

func init() {
	graft.Register(graft.Node[ports.LocalExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LocalExecutor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}
