package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fbgen/internal/core/ports"
)

// NodeID is the unique identifier for the action source Graft node.
const NodeID graft.ID = "adapter.action_source"

func init() {
	graft.Register(graft.Node[ports.ActionSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ActionSource, error) {
			return NewLoader(), nil
		},
	})
}
