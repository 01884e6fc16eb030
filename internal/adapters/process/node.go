package process

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/deltamake/deltamake/internal/core/ports"
)

// NodeID is the unique identifier for the process factory Graft node.
const NodeID graft.ID = "adapter.process_factory"

func init() {
	graft.Register(graft.Node[ports.ProcessFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ProcessFactory, error) {
			return Factory{}, nil
		},
	})
}
