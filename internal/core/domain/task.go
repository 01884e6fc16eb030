package domain

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/deltamake/deltamake/internal/core/ports"
)

// MaxWorkerTitle bounds a Command's display title, matching the original's
// DELTAMAKE_MAX_WORKER_TITLE.
const MaxWorkerTitle = 32

// TaskKind tags the Task sum type.
type TaskKind int

const (
	TaskCommand TaskKind = iota
	TaskBarrier
)

// Task is the scheduler's unit of work: either a Command or a Barrier.
// It is immutable after creation except for the execution-result fields a
// Command populates once it has run.
type Task struct {
	Kind TaskKind

	// Command fields.
	Title         string
	Command       string
	FailIfNonZero bool
	returnValue   int
	process       ports.Process

	// Barrier fields.
	target  int32
	counter atomic.Int32
	done    chan struct{}
	doneOnce sync.Once
}

// NewCommandTask creates a Command task. Title is used verbatim as the
// worker-slot label; callers are expected to have already bounded it to
// MaxWorkerTitle display cells.
func NewCommandTask(title, command string, failIfNonZero bool) *Task {
	return &Task{
		Kind:          TaskCommand,
		Title:         title,
		Command:       command,
		FailIfNonZero: failIfNonZero,
	}
}

// BarrierTitle is painted in the status overlay for a Barrier's worker slot.
const BarrierTitle = "-- barrier --"

// NewBarrierTask creates a Barrier whose target is the worker-set size at
// the time the scheduler created it (Invariant 2).
func NewBarrierTask(target int) *Task {
	return &Task{
		Kind:   TaskBarrier,
		Title:  BarrierTitle,
		target: int32(target),
		done:   make(chan struct{}),
	}
}

// ReturnValue reports a Command's exit code. It is not valid until Execute
// has returned.
func (t *Task) ReturnValue() int { return t.returnValue }

// Process exposes the underlying Process for a Command task so the
// scheduler can flush its captured output or kill it in flight.
func (t *Task) Process() ports.Process { return t.process }

// Execute runs the task to completion. For a Command, it spawns a fresh
// Process via factory and reports ok iff the spawn succeeded and (the
// command wasn't required to succeed, or it exited zero). For a Barrier,
// it increments the arrival counter and blocks until every worker has
// arrived, or ctx is canceled.
func (t *Task) Execute(ctx context.Context, factory ports.ProcessFactory) bool {
	switch t.Kind {
	case TaskCommand:
		t.process = factory.New()
		rv, err := t.process.Exec(ctx, t.Command)
		if err != nil {
			return false
		}
		t.returnValue = rv
		if t.FailIfNonZero {
			return rv == 0
		}
		return true

	case TaskBarrier:
		if t.counter.Add(1) >= t.target {
			t.signalDone()
		}
		select {
		case <-t.done:
			return true
		case <-ctx.Done():
			return true
		}

	default:
		return false
	}
}

// Skip forces a Barrier's counter to its target, waking every worker
// blocked on it. Used by Stop/Kill to drain outstanding barriers.
func (t *Task) Skip() {
	if t.Kind != TaskBarrier {
		return
	}
	t.counter.Store(t.target)
	t.signalDone()
}

// IsDone reports whether every worker has arrived at a Barrier.
func (t *Task) IsDone() bool {
	if t.Kind != TaskBarrier {
		return true
	}
	return t.counter.Load() >= t.target
}

func (t *Task) signalDone() {
	t.doneOnce.Do(func() { close(t.done) })
}
