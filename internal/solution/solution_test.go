package solution_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/deltamake/deltamake/internal/adapters/terminal/mocks"
	"github.com/deltamake/deltamake/internal/core/domain"
	"github.com/deltamake/deltamake/internal/core/ports"
	"github.com/deltamake/deltamake/internal/solution"
)

// fakeTerminal is a minimal ports.Terminal recording Log calls and
// ExecSystem invocations so solution/build tests can assert on warnings and
// pre/post hook ordering without a real tty or shell.
type fakeTerminal struct {
	mu       sync.Mutex
	warnings []string
	execs    []string
}

func (f *fakeTerminal) Init() error                        { return nil }
func (f *fakeTerminal) UpdateSize()                         {}
func (f *fakeTerminal) MoveUp(int)                          {}
func (f *fakeTerminal) MoveDown(int)                        {}
func (f *fakeTerminal) MoveLeft(int)                        {}
func (f *fakeTerminal) MoveRight(int)                       {}
func (f *fakeTerminal) Flush()                              {}
func (f *fakeTerminal) SetBuffering(ports.Buffering) error  { return nil }
func (f *fakeTerminal) ShowCursor(bool)                     {}
func (f *fakeTerminal) GetCursorPosition() (int, int, error) { return 0, 0, nil }
func (f *fakeTerminal) ClearDown()                          {}
func (f *fakeTerminal) ClearLeft()                          {}
func (f *fakeTerminal) Write(string) int                    { return 0 }
func (f *fakeTerminal) Columns() int                        { return 80 }
func (f *fakeTerminal) Rows() int                           { return 24 }
func (f *fakeTerminal) LastModificationTime(string) (int64, error) { return 0, nil }
func (f *fakeTerminal) SetVerbose(bool)                     {}

func (f *fakeTerminal) Log(level ports.LogLevel, format string, args ...any) int {
	if level == ports.LogWarning {
		f.mu.Lock()
		f.warnings = append(f.warnings, format)
		f.mu.Unlock()
	}
	return 0
}

func (f *fakeTerminal) ExecSystem(cmd string) {
	f.mu.Lock()
	f.execs = append(f.execs, cmd)
	f.mu.Unlock()
}

func (f *fakeTerminal) warningCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.warnings)
}

// writeManifest marshals doc to dir/solution.json and returns that path.
func writeManifest(t *testing.T, dir string, doc map[string]any) string {
	t.Helper()
	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	path := filepath.Join(dir, "solution.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
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

func TestSolution_LoadParsesManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, baseManifest())

	s, err := solution.Load(path, &fakeTerminal{})
	require.NoError(t, err)
	assert.Equal(t, dir, s.CurrentPath())
	assert.Equal(t, filepath.Join(dir, "deltamake.json"), s.DiffPath())
}

func TestSolution_LoadUnknownTypeReturnsErrPluginNotFound(t *testing.T) {
	dir := t.TempDir()
	doc := baseManifest()
	doc["type"] = "rust"
	path := writeManifest(t, dir, doc)

	_, err := solution.Load(path, &fakeTerminal{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPluginNotFound)
}

func TestSolution_LoadMissingRequiredKeyReturnsErrConfigValueNotSet(t *testing.T) {
	dir := t.TempDir()
	doc := baseManifest()
	delete(doc["paths"].(map[string]any), "build")
	path := writeManifest(t, dir, doc)

	_, err := solution.Load(path, &fakeTerminal{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigValueNotSet)
}

func TestSolution_LoadMissingBuildsReturnsErrConfigValueNotSet(t *testing.T) {
	dir := t.TempDir()
	doc := baseManifest()
	delete(doc, "builds")
	path := writeManifest(t, dir, doc)

	_, err := solution.Load(path, &fakeTerminal{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigValueNotSet)
}

func TestSolution_ResolveSourcesWarnsOnMissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "a.cpp"), []byte("// a"), 0o644))

	doc := baseManifest()
	doc["files"] = []string{"src/a.cpp", "src/missing.cpp"}
	path := writeManifest(t, dir, doc)

	term := &fakeTerminal{}
	_, err := solution.Load(path, term)
	require.NoError(t, err)
	assert.Equal(t, 1, term.warningCount())
}

// TestSolution_LoadUsesGomockTerminalForMissingFileWarning swaps the
// hand-rolled fakeTerminal for a generated gomock mock to pin the exact
// LogWarning call Load makes when a declared source is missing.
func TestSolution_LoadUsesGomockTerminalForMissingFileWarning(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "a.cpp"), []byte("// a"), 0o644))

	doc := baseManifest()
	doc["files"] = []string{"src/a.cpp", "src/missing.cpp"}
	path := writeManifest(t, dir, doc)

	ctrl := gomock.NewController(t)
	term := mocks.NewMockTerminal(ctrl)
	term.EXPECT().
		Log(ports.LogWarning, gomock.Any(), gomock.Any()).
		Return(0)

	_, err := solution.Load(path, term)
	require.NoError(t, err)
}

func TestSolution_DiffRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, baseManifest())

	s, err := solution.Load(path, &fakeTerminal{})
	require.NoError(t, err)

	_, err = s.GenBuild("default")
	require.NoError(t, err)

	require.NoError(t, s.SaveDiff(s.DiffPath()))

	reloaded, err := solution.Load(path, &fakeTerminal{})
	require.NoError(t, err)
	assert.True(t, reloaded.LoadDiff(reloaded.DiffPath()))
}

func TestSolution_LoadDiffMissingFileIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, baseManifest())

	s, err := solution.Load(path, &fakeTerminal{})
	require.NoError(t, err)

	assert.False(t, s.LoadDiff(filepath.Join(dir, "does-not-exist.json")))
}

func TestSolution_LoadDiffMalformedFileWarnsAndIgnores(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, baseManifest())
	diffPath := filepath.Join(dir, "deltamake.json")
	require.NoError(t, os.WriteFile(diffPath, []byte("not json"), 0o644))

	term := &fakeTerminal{}
	s, err := solution.Load(path, term)
	require.NoError(t, err)

	assert.False(t, s.LoadDiff(diffPath))
	assert.Equal(t, 1, term.warningCount())
}

func TestSolution_GenBuildUnknownNameReturnsErrBuildNotFound(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, baseManifest())

	s, err := solution.Load(path, &fakeTerminal{})
	require.NoError(t, err)

	_, err = s.GenBuild("release")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildNotFound)
}
