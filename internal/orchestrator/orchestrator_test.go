package orchestrator_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltamake/deltamake/internal/core/ports"
	"github.com/deltamake/deltamake/internal/orchestrator"
)

type fakeTerminal struct{ verbose bool }

func (f *fakeTerminal) Init() error                         { return nil }
func (f *fakeTerminal) UpdateSize()                          {}
func (f *fakeTerminal) MoveUp(int)                           {}
func (f *fakeTerminal) MoveDown(int)                         {}
func (f *fakeTerminal) MoveLeft(int)                         {}
func (f *fakeTerminal) MoveRight(int)                        {}
func (f *fakeTerminal) Flush()                               {}
func (f *fakeTerminal) SetBuffering(ports.Buffering) error   { return nil }
func (f *fakeTerminal) ShowCursor(bool)                      {}
func (f *fakeTerminal) GetCursorPosition() (int, int, error) { return 0, 0, nil }
func (f *fakeTerminal) ClearDown()                           {}
func (f *fakeTerminal) ClearLeft()                           {}
func (f *fakeTerminal) Log(ports.LogLevel, string, ...any) int { return 0 }
func (f *fakeTerminal) Write(string) int                     { return 0 }
func (f *fakeTerminal) Columns() int                         { return 80 }
func (f *fakeTerminal) Rows() int                            { return 24 }
func (f *fakeTerminal) ExecSystem(string)                    {}
func (f *fakeTerminal) LastModificationTime(string) (int64, error) { return 0, nil }
func (f *fakeTerminal) SetVerbose(v bool)                    { f.verbose = v }

type fakeFactory struct{}

func (fakeFactory) New() ports.Process { return nil }

type fakeScheduler struct {
	workersInit int
	commands    []string
	barriers    int
	started     bool
	failed      bool
}

func (f *fakeScheduler) Init(n int)    { f.workersInit = n }
func (f *fakeScheduler) AddCommand(title, command string, failIfNonZero bool) {
	f.commands = append(f.commands, title)
}
func (f *fakeScheduler) AddBarrier()                 { f.barriers++ }
func (f *fakeScheduler) GetTaskCount() int           { return len(f.commands) + f.barriers }
func (f *fakeScheduler) Start(context.Context)       { f.started = true }
func (f *fakeScheduler) Failed() bool                { return f.failed }

// chdirTemp switches the process cwd to a fresh temp dir containing a
// solution.json built from doc, restoring the original cwd on cleanup.
// Orchestrator.Run hardcodes the manifest as a relative path, exactly like
// the original CLI, which always ran from the solution's own directory.
func chdirTemp(t *testing.T, doc map[string]any) string {
	t.Helper()
	dir := t.TempDir()
	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solution.json"), data, 0o644))

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })

	return dir
}

func baseManifest() map[string]any {
	return map[string]any{
		"version": "1",
		"type":    "c/cpp",
		"paths": map[string]any{
			"scan":  "src",
			"build": "build",
			"tmp":   "tmp",
		},
		"files": []string{},
		"builds": map[string]any{
			"default": map[string]any{},
		},
	}
}

func TestOrchestrator_EmptyQueueSkipsSchedulerStart(t *testing.T) {
	chdirTemp(t, baseManifest())

	sched := &fakeScheduler{}
	o := orchestrator.New(&fakeTerminal{}, sched, fakeFactory{})

	failed, err := o.Run(context.Background(), orchestrator.Config{})
	require.NoError(t, err)
	assert.False(t, failed)
	assert.False(t, sched.started, "Start must not be called when nothing was scheduled")
}

func TestOrchestrator_WorkersZeroFallsBackToCPUCount(t *testing.T) {
	chdirTemp(t, baseManifest())

	sched := &fakeScheduler{}
	o := orchestrator.New(&fakeTerminal{}, sched, fakeFactory{})

	_, err := o.Run(context.Background(), orchestrator.Config{Workers: 0})
	require.NoError(t, err)
	assert.Greater(t, sched.workersInit, 0)
}

func TestOrchestrator_ExplicitWorkerCountIsPassedThrough(t *testing.T) {
	chdirTemp(t, baseManifest())

	sched := &fakeScheduler{}
	o := orchestrator.New(&fakeTerminal{}, sched, fakeFactory{})

	_, err := o.Run(context.Background(), orchestrator.Config{Workers: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, sched.workersInit)
}

func TestOrchestrator_NoBuildSkipsEverythingAfterScan(t *testing.T) {
	dir := chdirTemp(t, baseManifest())

	sched := &fakeScheduler{}
	o := orchestrator.New(&fakeTerminal{}, sched, fakeFactory{})

	failed, err := o.Run(context.Background(), orchestrator.Config{NoBuild: true})
	require.NoError(t, err)
	assert.False(t, failed)
	assert.False(t, sched.started)
	assert.NoFileExists(t, filepath.Join(dir, "deltamake.json"))
}

func TestOrchestrator_UnknownBuildNameIsAnError(t *testing.T) {
	chdirTemp(t, baseManifest())

	sched := &fakeScheduler{}
	o := orchestrator.New(&fakeTerminal{}, sched, fakeFactory{})

	failed, err := o.Run(context.Background(), orchestrator.Config{Builds: []string{"release"}})
	require.Error(t, err)
	assert.True(t, failed)
	assert.False(t, sched.started)
}

func TestOrchestrator_NonEmptyQueueStartsSchedulerAndSavesDiff(t *testing.T) {
	dir := chdirTemp(t, baseManifest())
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.cpp"), []byte("int main(){}"), 0o644))

	doc := baseManifest()
	doc["files"] = []string{"src/main.cpp"}
	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solution.json"), data, 0o644))

	sched := &fakeScheduler{}
	o := orchestrator.New(&fakeTerminal{}, sched, fakeFactory{})

	failed, err := o.Run(context.Background(), orchestrator.Config{})
	require.NoError(t, err)
	assert.False(t, failed)
	assert.True(t, sched.started)
	assert.FileExists(t, filepath.Join(dir, "deltamake.json"))
}

func TestOrchestrator_DontSaveDiffSkipsSidecarWrite(t *testing.T) {
	dir := chdirTemp(t, baseManifest())
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.cpp"), []byte("int main(){}"), 0o644))

	doc := baseManifest()
	doc["files"] = []string{"src/main.cpp"}
	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solution.json"), data, 0o644))

	sched := &fakeScheduler{}
	o := orchestrator.New(&fakeTerminal{}, sched, fakeFactory{})

	_, err = o.Run(context.Background(), orchestrator.Config{DontSaveDiff: true})
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "deltamake.json"))
}

func TestOrchestrator_SchedulerFailureIsReportedButPostBuildStillRuns(t *testing.T) {
	dir := chdirTemp(t, baseManifest())
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.cpp"), []byte("int main(){}"), 0o644))

	doc := baseManifest()
	doc["files"] = []string{"src/main.cpp"}
	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solution.json"), data, 0o644))

	sched := &fakeScheduler{failed: true}
	o := orchestrator.New(&fakeTerminal{}, sched, fakeFactory{})

	failed, err := o.Run(context.Background(), orchestrator.Config{})
	require.NoError(t, err)
	assert.True(t, failed)
	assert.FileExists(t, filepath.Join(dir, "deltamake.json"), "the diff is still saved even when the build failed")
}
