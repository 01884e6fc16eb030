package terminal

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/deltamake/deltamake/internal/core/ports"
)

// NodeID is the unique identifier for the terminal Graft node.
const NodeID graft.ID = "adapter.terminal"

func init() {
	graft.Register(graft.Node[ports.Terminal]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Terminal, error) {
			t := New()
			if err := t.Init(); err != nil {
				return nil, err
			}
			return t, nil
		},
	})
}
