package main

import (
	"context"
	"fmt"
	"os"

	"github.com/grindlemire/graft"

	"github.com/deltamake/deltamake/internal/orchestrator"
	_ "github.com/deltamake/deltamake/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	o, _, err := graft.ExecuteFor[*orchestrator.Orchestrator](ctx)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}

	cmd := newRootCmd(o.Run)
	cmd.SetContext(ctx)

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}
