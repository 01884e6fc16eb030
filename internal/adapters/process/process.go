// Package process implements ports.Process by shelling out through
// "/bin/sh -c", capturing stdout and stderr into independent buffers and
// isolating the child from terminal-delivered SIGINT via its own process
// group — the Go equivalent of the original's fork/pipe/poll/execve and
// child-side SIG_IGN.
package process

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/zerr"

	"github.com/deltamake/deltamake/internal/core/domain"
	"github.com/deltamake/deltamake/internal/core/ports"
)

// Factory creates real Processes. It is wired into the scheduler via
// ports.ProcessFactory so tests can substitute a fake.
type Factory struct{}

func (Factory) New() ports.Process { return &Process{} }

// Process is a single shell-spawned child and its captured output.
type Process struct {
	mu  sync.Mutex
	cmd *exec.Cmd

	outBuf, errBuf safeBuffer
}

// Exec starts "/bin/sh -c command" inheriting the current environment,
// drains stdout and stderr into independent buffers concurrently, and
// blocks until the child exits.
func (p *Process) Exec(ctx context.Context, command string) (int, error) {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command) //nolint:gosec // manifest-authored compile/link command, run intentionally
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	// On ctx cancellation kill the whole process group, as Kill does, so a
	// grandchild holding the output pipes open cannot keep the drain blocked.
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		p.errBuf.WriteString("stdout pipe: " + err.Error())
		return 0, zerr.Wrap(err, "process: stdout pipe failed")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		p.errBuf.WriteString("stderr pipe: " + err.Error())
		return 0, zerr.Wrap(err, "process: stderr pipe failed")
	}

	p.mu.Lock()
	p.cmd = cmd
	p.mu.Unlock()

	if err := cmd.Start(); err != nil {
		p.errBuf.WriteString("spawn failed: " + err.Error())
		return 0, zerr.Wrap(domain.ErrProcessSpawn, err.Error())
	}

	var drain errgroup.Group
	drain.Go(func() error { p.outBuf.drainFrom(stdout); return nil })
	drain.Go(func() error { p.errBuf.drainFrom(stderr); return nil })
	_ = drain.Wait()

	waitErr := cmd.Wait()
	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok && exitErr.Exited() {
			return exitErr.ExitCode(), nil
		}
		return 0, zerr.With(zerr.Wrap(domain.ErrProcessSignal, "process: abnormal exit"), "reason", waitErr.Error())
	}

	return 0, nil
}

// Kill sends SIGKILL to the child's process group, reaping any grandchild
// the shell spawned along with the shell itself — a deliberate
// strengthening of the original's single-pid kill().
func (p *Process) Kill() {
	p.mu.Lock()
	cmd := p.cmd
	p.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return
	}
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}

func (p *Process) OutBuffer() []byte { return p.outBuf.Bytes() }
func (p *Process) ErrBuffer() []byte { return p.errBuf.Bytes() }

// safeBuffer is a bytes.Buffer guarded by a mutex so the drain goroutine's
// writes and the scheduler's reads of OutBuffer/ErrBuffer never race.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) drainFrom(r io.Reader) {
	chunk := make([]byte, 512)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			b.mu.Lock()
			b.buf.Write(chunk[:n])
			b.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (b *safeBuffer) WriteString(s string) {
	b.mu.Lock()
	b.buf.WriteString(s)
	b.mu.Unlock()
}

func (b *safeBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]byte, b.buf.Len())
	copy(out, b.buf.Bytes())
	return out
}
