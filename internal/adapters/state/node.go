package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fbgen/internal/core/ports"
)

// DefaultPath is the generation store location.
const DefaultPath = "fbgen_state.json"

// NodeID is the unique identifier for the generation store Graft node.
const NodeID graft.ID = "adapter.generation_store"

func init() {
	graft.Register(graft.Node[ports.GenerationStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GenerationStore, error) {
			return NewStore(DefaultPath)
		},
	})
}
