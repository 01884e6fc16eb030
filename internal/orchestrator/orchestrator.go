// Package orchestrator wires the CLI's parsed flags to a root Solution and
// the Scheduler, implementing the top-level run sequence of §4.G.
package orchestrator

import (
	"context"
	"runtime"

	"github.com/deltamake/deltamake/internal/core/ports"
	"github.com/deltamake/deltamake/internal/solution"
)

const manifestName = "solution.json"

// Config carries the parsed CLI flags the orchestrator needs.
type Config struct {
	Verbose      bool
	NoBuild      bool
	Force        bool
	DontSaveDiff bool
	Workers      int
	Builds       []string
}

// Orchestrator drives a single run: load the root solution, resolve the
// requested builds, dispatch their compile commands through the
// scheduler, link, and persist the diff sidecar.
type Orchestrator struct {
	term    ports.Terminal
	sched   scheduler
	factory ports.ProcessFactory
}

// scheduler is the subset of *scheduler.Scheduler the orchestrator drives;
// narrowed to an interface so Run does not depend on the concrete engine
// type (only node.go wires that in) and tests can substitute a fake.
type scheduler interface {
	Init(nWorkers int)
	AddCommand(title, command string, failIfNonZero bool)
	AddBarrier()
	GetTaskCount() int
	Start(ctx context.Context)
	Failed() bool
}

// New binds an Orchestrator to its Terminal and Scheduler. The
// ProcessFactory is accepted for symmetry with the wiring graph even
// though the orchestrator itself never spawns a Process directly — only
// PreBuild/PostBuild hooks run through Terminal.ExecSystem, and compile
// commands run through the scheduler's own factory.
func New(term ports.Terminal, sched scheduler, factory ports.ProcessFactory) *Orchestrator {
	return &Orchestrator{term: term, sched: sched, factory: factory}
}

// Run executes the full load → scan → build → link → save-diff sequence
// and reports whether anything failed.
func (o *Orchestrator) Run(ctx context.Context, cfg Config) (failed bool, err error) {
	o.term.SetVerbose(cfg.Verbose)

	nWorkers := cfg.Workers
	if nWorkers == 0 {
		// -w was never passed at all (an explicit "-w 0" is clamped to 1
		// before Config reaches here); fall back to the detected CPU count.
		nWorkers = runtime.NumCPU()
		if nWorkers < 1 {
			nWorkers = 1
		}
	}
	o.sched.Init(nWorkers)

	root, err := solution.Load(manifestName, o.term)
	if err != nil {
		return true, err
	}

	root.ScanFolders()

	if cfg.NoBuild {
		return false, nil
	}

	if !cfg.Force {
		root.LoadDiff(root.DiffPath())
	}

	builds := cfg.Builds
	if len(builds) == 0 {
		builds = []string{"default"}
	}

	resolved := make([]*solution.Build, 0, len(builds))
	for _, name := range builds {
		b, err := root.GenBuild(name)
		if err != nil {
			return true, err
		}
		resolved = append(resolved, b)
	}

	for _, b := range resolved {
		if err := b.PreBuild(o.term, cfg.Force); err != nil {
			return true, err
		}
	}

	for _, b := range resolved {
		if _, err := b.Build(o.sched); err != nil {
			return true, err
		}
	}

	if o.sched.GetTaskCount() == 0 {
		o.term.Log(ports.LogInfo, "Nothing to do.\n")
		return false, nil
	} else {
		o.sched.Start(ctx)
		if o.sched.Failed() {
			failed = true
		}
	}

	for _, b := range resolved {
		if err := b.PostBuild(o.term, cfg.Force); err != nil {
			return true, err
		}
	}

	if !cfg.DontSaveDiff {
		if err := root.SaveDiff(root.DiffPath()); err != nil {
			return failed, err
		}
	}

	o.term.Log(ports.LogInfo, "Done.\n")
	return failed, nil
}
