// Package wiring registers all Graft nodes for the application. Importing
// it for side effects is the only place outside cmd/deltamake that knows
// the concrete adapters exist.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/deltamake/deltamake/internal/adapters/process"
	_ "github.com/deltamake/deltamake/internal/adapters/terminal"
	// Register engine and orchestrator nodes.
	_ "github.com/deltamake/deltamake/internal/engine/scheduler"
	_ "github.com/deltamake/deltamake/internal/orchestrator"
)
