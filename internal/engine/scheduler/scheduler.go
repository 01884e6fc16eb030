// Package scheduler implements the task dispatcher at the heart of
// DeltaMake: an ordered Command/Barrier queue pulled by a fixed worker
// pool, with a cooperative status state machine, a flicker-reduced
// terminal overlay, and two-stage interrupt handling.
package scheduler

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/deltamake/deltamake/internal/core/domain"
	"github.com/deltamake/deltamake/internal/core/ports"
)

// dispatchDelay is the scheduler's main-loop cadence, matching the
// original's DELTAMAKE_SCHEDULER_DELAY.
const dispatchDelay = 80 * time.Millisecond

// minWorkerTitle bounds a worker slot's painted width, matching the
// original's DELTAMAKE_MIN_WORKER_TITLE (equal to MaxWorkerTitle).
const minWorkerTitle = domain.MaxWorkerTitle

const spinnerFrames = `-\|/`

// Status is the scheduler's own lifecycle state, distinct from a Worker's.
type Status int32

const (
	Idle Status = iota
	Running
	Stopping
	Killing
)

// Scheduler owns the ordered task list and the worker set described in
// §3/§4.E. It is created once per process and reused across the orchestrator
// run; tasks queued by Solution/Build accumulate in it until Start drains
// them.
type Scheduler struct {
	term    ports.Terminal
	factory ports.ProcessFactory

	mu       sync.Mutex
	tasks    []*domain.Task
	nextTask int

	workers []*domain.Worker

	status      atomic.Int32
	spinnerTick atomic.Uint64
	topOffset   int

	anyFailed atomic.Bool
}

// New creates a Scheduler bound to a Terminal for status/log output and a
// ProcessFactory for spawning Command subprocesses.
func New(term ports.Terminal, factory ports.ProcessFactory) *Scheduler {
	s := &Scheduler{term: term, factory: factory}
	s.status.Store(int32(Idle))
	return s
}

// Init creates nWorkers idle Worker slots. It must be called before any
// AddCommand/AddBarrier so a Barrier's target reflects the final worker
// count (Invariant 2).
func (s *Scheduler) Init(nWorkers int) {
	if nWorkers < 1 {
		nWorkers = 1
	}
	s.workers = make([]*domain.Worker, nWorkers)
	for i := range s.workers {
		s.workers[i] = domain.NewWorker(i)
	}
}

func (s *Scheduler) Status() Status { return Status(s.status.Load()) }

func (s *Scheduler) isRunning() bool {
	return s.Status() == Running
}

// AddCommand appends a Command task. Invariant 1: a no-op with a warning
// while the scheduler is RUNNING.
func (s *Scheduler) AddCommand(title, command string, failIfNonZero bool) {
	if s.checkRunning() {
		return
	}
	task := domain.NewCommandTask(title, command, failIfNonZero)

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	s.term.Log(ports.LogDetail, "%s:\n\t%s\n", title, command)
}

// AddBarrier appends a Barrier whose target is the worker-set size at this
// moment (Invariant 2).
func (s *Scheduler) AddBarrier() {
	if s.checkRunning() {
		return
	}
	task := domain.NewBarrierTask(len(s.workers))

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	s.term.Log(ports.LogDetail, "%s\n", domain.BarrierTitle)
}

// GetTaskCount reports how many tasks are queued.
func (s *Scheduler) GetTaskCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *Scheduler) checkRunning() bool {
	running := s.isRunning()
	if running {
		s.term.Log(ports.LogWarning, "Scheduler is running!\n")
	}
	return running
}

// Failed reports whether any worker ended the most recent Start in FAIL.
func (s *Scheduler) Failed() bool { return s.anyFailed.Load() }

// Start spawns the worker pool and drives the dispatch loop until every
// task has been consumed (or the queue was drained by Stop) and every
// worker has exited. It returns once all workers have joined; Failed
// reports whether the run should be treated as unsuccessful.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	taskCount := len(s.tasks)
	s.mu.Unlock()

	if taskCount == 0 {
		s.term.Log(ports.LogWarning, "Scheduler task list is empty! Abort start.\n")
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stopInterrupt := s.installInterruptHandler(cancel)
	defer stopInterrupt()

	s.term.ShowCursor(false)
	s.status.Store(int32(Running))
	s.anyFailed.Store(false)

	// Every worker goroutine runs until Run returns, which only happens on a
	// nil Assign or a failed Command; errgroup just gives the fixed-size fan
	// out a single join point, the same shape the original used for its own
	// bounded worker pool.
	g, _ := errgroup.WithContext(runCtx)
	for _, w := range s.workers {
		w := w
		g.Go(func() error {
			w.Run(func(task *domain.Task) bool {
				return task.Execute(runCtx, s.factory)
			})
			return nil
		})
	}

	ticker := time.NewTicker(dispatchDelay)
	defer ticker.Stop()

	for range ticker.C {
		nStopped := 0
		for _, w := range s.workers {
			switch w.Status() {
			case domain.WorkerWorking:
				if s.Status() != Running {
					if task := w.CurrentTask(); task != nil && task.Kind == domain.TaskBarrier {
						task.Skip()
					}
				}
				if s.Status() == Killing {
					s.killWorkerTask(w)
				}

			case domain.WorkerWaitTask:
				s.giveWorkerTask(w)

			case domain.WorkerFail:
				if s.Status() != Stopping {
					s.Stop()
				}
				nStopped++

			case domain.WorkerStopped:
				nStopped++
			}
		}

		if nStopped == len(s.workers) {
			break
		}

		s.updateStatus()
	}

	for _, w := range s.workers {
		if w.Status() == domain.WorkerFail {
			s.anyFailed.Store(true)
			if task := w.CurrentTask(); task != nil {
				s.showCommandStatus(w, task)
			}
		}
	}

	s.updateStatus()
	_ = g.Wait()

	s.status.Store(int32(Idle))
	s.updateStatus()
	s.term.ShowCursor(true)

	s.mu.Lock()
	s.tasks = nil
	s.nextTask = 0
	s.mu.Unlock()
}

// Stop drains the queue (Invariant 5): subsequent dispatch ticks see
// nextTask == len(tasks), so no new Command starts, and any Barrier a
// worker is blocked on gets Skip()-ed on the next tick so that worker can
// observe the drain and finish its current Command.
func (s *Scheduler) Stop() {
	s.status.Store(int32(Stopping))
	s.mu.Lock()
	s.nextTask = len(s.tasks)
	s.mu.Unlock()
}

// Kill first Stops, then marks KILLING so the dispatch loop sends SIGKILL
// to every in-flight worker's Process.
func (s *Scheduler) Kill() {
	s.Stop()
	s.status.Store(int32(Killing))
}

func (s *Scheduler) killWorkerTask(w *domain.Worker) {
	task := w.CurrentTask()
	if task != nil && task.Kind == domain.TaskCommand {
		if p := task.Process(); p != nil {
			p.Kill()
		}
	}
}

// giveWorkerTask mirrors the original's GiveWorkerTask exactly: flush the
// previous Command's captured output first (preserving scrollback), then
// assign the next task under the worker's mutex, advancing nextTask
// unconditionally for a Command but only once a Barrier IsDone for a
// Barrier (Invariant 4 — monotonic, and only every worker's arrival
// unblocks the one after it).
func (s *Scheduler) giveWorkerTask(w *domain.Worker) {
	s.mu.Lock()
	done := s.nextTask == len(s.tasks)
	var current *domain.Task
	if !done {
		current = s.tasks[s.nextTask]
	}
	s.mu.Unlock()

	if done {
		w.Assign(nil)
		return
	}

	if prev := w.CurrentTask(); prev != nil {
		s.showCommandStatus(w, prev)
	}

	w.Assign(current)

	s.mu.Lock()
	if current.Kind == domain.TaskBarrier {
		if current.IsDone() {
			s.nextTask++
		}
	} else {
		s.nextTask++
	}
	s.mu.Unlock()
}

// showCommandStatus is the "show command status" pass: it preserves
// terminal scrollback by moving the cursor to the top of the status
// overlay, clearing down, printing the previous Command's captured
// stdout/stderr prefixed by its title, and re-measuring the cursor delta
// to shrink topOffset before the overlay is redrawn on top again.
func (s *Scheduler) showCommandStatus(w *domain.Worker, task *domain.Task) {
	if task.Kind != domain.TaskCommand {
		return
	}
	process := task.Process()
	if process == nil {
		return
	}

	out := process.OutBuffer()
	errOut := process.ErrBuffer()
	if len(out) == 0 && len(errOut) == 0 {
		return
	}

	s.term.MoveUp(s.topOffset)
	s.term.MoveLeft(s.term.Columns())
	s.term.ClearDown()
	s.term.Flush()

	oldX, oldY, _ := s.term.GetCursorPosition()

	if len(out) > 0 {
		s.term.Log(ports.LogInfo, "%s | %s", task.Title, string(out))
		if out[len(out)-1] != '\n' {
			s.term.Write("\n")
		}
	}
	if len(errOut) > 0 {
		s.term.Log(ports.LogError, "%s | %s", task.Title, string(errOut))
		if errOut[len(errOut)-1] != '\n' {
			s.term.Write("\n")
		}
	}

	s.term.Flush()
	newX, newY, _ := s.term.GetCursorPosition()
	if oldY == newY {
		newY++
	}

	offset := newY - oldY
	if offset < 0 {
		offset = 0
	}
	if offset >= s.topOffset {
		s.topOffset = 0
	} else {
		s.topOffset -= offset
	}

	s.term.MoveDown(s.topOffset)
	_ = oldX
	_ = newX

	s.updateStatus()
}

// updateStatus repaints the worker-slot overlay and trailing status line.
func (s *Scheduler) updateStatus() {
	s.spinnerTick.Add(1)
	s.term.UpdateSize()

	nWorkers := len(s.workers)
	columns := s.term.Columns()
	minSlotWidth := 4 + minWorkerTitle
	maxPerLine := columns / minSlotWidth
	if maxPerLine < 1 {
		maxPerLine = 1
	}
	nLines := nWorkers/maxPerLine + 1
	if nWorkers%maxPerLine != 0 {
		nLines++
	}
	maxTitleWidth := minWorkerTitle + (columns-maxPerLine*minSlotWidth)/maxPerLine
	if maxTitleWidth < minWorkerTitle {
		maxTitleWidth = minWorkerTitle
	}

	if nLines > s.topOffset {
		for i := 0; i < nLines-s.topOffset; i++ {
			s.term.Log(ports.LogInfo, "\n")
		}
		s.topOffset = nLines
	}

	s.term.MoveUp(s.topOffset)
	s.term.MoveLeft(columns)

	nInLine := 0
	for _, w := range s.workers {
		title := ""
		if task := w.CurrentTask(); task != nil {
			title = task.Title
		}
		s.term.Log(ports.LogInfo, "[%c] %-*s", spinnerFor(w, s.spinnerTick.Load()), maxTitleWidth, title)

		nInLine++
		if nInLine == maxPerLine {
			nInLine = 0
			s.term.Log(ports.LogInfo, "\n\r")
		}
	}
	if nInLine != 0 {
		s.term.Log(ports.LogInfo, "\n\r")
	}

	s.mu.Lock()
	nextTask, total := s.nextTask, len(s.tasks)
	s.mu.Unlock()

	switch s.Status() {
	case Idle:
		s.term.ClearDown()
		s.term.Log(ports.LogInfo, "Ready.\n\r")
	case Running:
		s.term.Log(ports.LogInfo, "[%3d/%-3d]\n\r", nextTask, total)
	case Stopping:
		s.term.Log(ports.LogInfo, "Stopping workers...\n\r")
	case Killing:
		s.term.Log(ports.LogInfo, "Terminating in-flight commands.\n\r")
	}

	s.term.Flush()
}

func spinnerFor(w *domain.Worker, tick uint64) byte {
	switch w.Status() {
	case domain.WorkerWaitTask:
		return '*'
	case domain.WorkerWorking:
		return spinnerFrames[tick%uint64(len(spinnerFrames))]
	case domain.WorkerFail:
		return 'X'
	case domain.WorkerStopped:
		return '='
	default:
		return '?'
	}
}

// installInterruptHandler installs the two-stage SIGINT policy of §5: the
// first interrupt calls Stop (graceful drain) and re-arms for a second,
// brutal interrupt that calls Kill and cancels runCtx; a handler invoked
// from within itself to re-arm (as the original's signal handler does) is
// modeled here as a small state machine over one signal.Notify channel.
// It returns a function that restores the default disposition.
func (s *Scheduler) installInterruptHandler(kill context.CancelFunc) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)

	stage := atomic.Int32{}
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-sigCh:
				if stage.CompareAndSwap(0, 1) {
					s.Stop()
					continue
				}
				// A third Ctrl-C during a hung kill must still get the
				// process, so restore SIGINT's default disposition before
				// acting on the second one rather than after.
				signal.Reset(syscall.SIGINT)
				s.Kill()
				kill()
				return
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		signal.Stop(sigCh)
	}
}
