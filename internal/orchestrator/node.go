package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/deltamake/deltamake/internal/adapters/process"
	"github.com/deltamake/deltamake/internal/adapters/terminal"
	"github.com/deltamake/deltamake/internal/core/ports"
	schedengine "github.com/deltamake/deltamake/internal/engine/scheduler"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "app.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			terminal.NodeID,
			process.NodeID,
			schedengine.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			term, err := graft.Dep[ports.Terminal](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[ports.ProcessFactory](ctx)
			if err != nil {
				return nil, err
			}

			sched, err := graft.Dep[*schedengine.Scheduler](ctx)
			if err != nil {
				return nil, err
			}

			return New(term, sched, factory), nil
		},
	})
}
