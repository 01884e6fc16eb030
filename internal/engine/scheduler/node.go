package scheduler

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/deltamake/deltamake/internal/adapters/process"
	"github.com/deltamake/deltamake/internal/adapters/terminal"
	"github.com/deltamake/deltamake/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			terminal.NodeID,
			process.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			term, err := graft.Dep[ports.Terminal](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[ports.ProcessFactory](ctx)
			if err != nil {
				return nil, err
			}

			return New(term, factory), nil
		},
	})
}
