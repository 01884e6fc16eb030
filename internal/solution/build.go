package solution

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/zerr"

	"github.com/deltamake/deltamake/internal/core/domain"
	"github.com/deltamake/deltamake/internal/core/ports"
)

// subBuild pairs a sub-solution with the Build resolved against one of its
// own build configs, mirroring CBuild's per-code sub list.
type subBuild struct {
	code     string
	solution *Solution
	build    *Build
}

// Build is a single named build target resolved against a Solution: its
// compiler/linker settings, the sub-builds it recurses into, and the
// object files it has scheduled so far.
type Build struct {
	solution *Solution
	name     string
	cfg      buildConfig

	subs []subBuild

	objects   []string
	needsLink bool
}

func newBuild(s *Solution, name string, cfg buildConfig) (*Build, error) {
	b := &Build{solution: s, name: name, cfg: cfg}

	for code, ref := range cfg.Solutions {
		relPath, ok := s.subSolutions[code]
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrSolutionNotFound, "solution: unknown sub-solution"), "codename", code)
		}

		subManifest := filepath.Join(s.currentPath, relPath, manifestFilename)
		sub, err := Load(subManifest, s.term)
		if err != nil {
			return nil, zerr.Wrap(err, fmt.Sprintf("solution: loading sub-solution %q", code))
		}
		sub.buildPath = s.buildPath
		sub.tmpPath = s.tmpPath

		subBuildName := ref.Build
		if subBuildName == "" {
			subBuildName = defaultBuildName
		}
		subB, err := sub.GenBuild(subBuildName)
		if err != nil {
			return nil, zerr.Wrap(err, fmt.Sprintf("solution: generating sub-build for %q", code))
		}

		b.subs = append(b.subs, subBuild{code: code, solution: sub, build: subB})
	}

	return b, nil
}

const defaultBuildName = "default"

// PreBuild ensures buildPath/tmpPath exist, concurrently hydrates every
// sub-solution's own diff sidecar (independent I/O unless force discards
// it), recurses into every sub-build's PreBuild depth-first, then runs the
// "pre" hook synchronously.
func (b *Build) PreBuild(term ports.Terminal, force bool) error {
	if err := os.MkdirAll(b.solution.buildPath, 0o755); err != nil {
		return zerr.Wrap(err, "solution: can't create build path")
	}
	if err := os.MkdirAll(b.solution.tmpPath, 0o755); err != nil {
		return zerr.Wrap(err, "solution: can't create tmp path")
	}

	if !force && len(b.subs) > 0 {
		g := new(errgroup.Group)
		g.SetLimit(runtime.NumCPU())
		for _, sub := range b.subs {
			sub := sub
			g.Go(func() error {
				sub.solution.LoadDiff(sub.solution.DiffPath())
				return nil
			})
		}
		_ = g.Wait()
	}

	for _, sub := range b.subs {
		if err := sub.build.PreBuild(term, force); err != nil {
			return err
		}
	}

	if b.cfg.Pre != "" {
		term.ExecSystem(b.cfg.Pre)
	}
	return nil
}

// Build recurses sub-builds first, then emits one Command per out-of-date
// source onto sched, returning the number of commands it scheduled itself
// (sub-build commands are not counted in the return value, matching the
// original, but a non-zero sub count still forces needsLink).
func (b *Build) Build(sched commandSink) (int, error) {
	nCommands := 0

	for _, sub := range b.subs {
		n, err := sub.build.Build(sched)
		if err != nil {
			return nCommands, err
		}
		if n > 0 {
			b.needsLink = true
		}
	}

	cmdBegin := b.compileCommandPrefix()

	for _, rel := range b.solution.sourceOrder {
		src := b.solution.sources[rel]

		outStem := stemOf(rel)
		outPath := filepath.Join(b.solution.tmpPath, b.name+"_"+outStem)
		b.objects = append(b.objects, outPath)

		recorded, ok := b.solution.diff.Recorded(b.name, rel)
		if ok && recorded >= src.MTime {
			continue
		}

		b.needsLink = true
		nCommands++
		b.solution.diff.Record(b.name, rel, src.MTime)

		title := outStem
		if len(title) > domain.MaxWorkerTitle-1 {
			title = title[:domain.MaxWorkerTitle-1]
		}

		cmd := cmdBegin + `"` + src.Path + `" -o "` + outPath + `"`
		sched.AddCommand(title, cmd, true)
	}

	return nCommands, nil
}

func (b *Build) compileCommandPrefix() string {
	compiler := b.cfg.Compiler
	if compiler == "" {
		compiler = "g++"
	}

	var sb strings.Builder
	sb.WriteString(compiler)
	sb.WriteByte(' ')
	if b.cfg.CompilerFlags != "" {
		sb.WriteString(b.cfg.CompilerFlags)
		sb.WriteByte(' ')
	}
	for _, inc := range b.cfg.Paths.Include {
		sb.WriteString(`-I"` + inc + `" `)
	}
	for _, lib := range b.cfg.Paths.Lib {
		sb.WriteString(`-L"` + lib + `" `)
	}
	for _, def := range b.cfg.Defines {
		sb.WriteString(`-D"` + def + `" `)
	}
	sb.WriteString("-c ")
	return sb.String()
}

// PostBuild recurses sub-PostBuilds first (persisting each sub-solution's
// own diff sidecar independently, unless force), then links or archives if
// anything changed, then runs the "post" hook.
func (b *Build) PostBuild(term ports.Terminal, force bool) error {
	for _, sub := range b.subs {
		if err := sub.build.PostBuild(term, force); err != nil {
			return err
		}
		if !force {
			if err := sub.solution.SaveDiff(sub.solution.DiffPath()); err != nil {
				return err
			}
		}
	}

	if !b.needsLink {
		term.Log(ports.LogDetail, "Nothing to link.\n")
		return nil
	}

	outType := b.cfg.Type
	if outType == "" {
		outType = "exec"
	}
	outName := b.cfg.OutName
	if outName == "" {
		outName = "out"
	}
	outPath := filepath.Join(b.solution.buildPath, outName)

	var cmd string
	switch outType {
	case "lib":
		term.Log(ports.LogInfo, "Archiving...\n")
		archiver := b.cfg.Archiver
		if archiver == "" {
			archiver = "ar"
		}
		cmd = archiver + ` rcs "` + outPath + `" ` + b.quotedObjects()
	default:
		term.Log(ports.LogInfo, "Linking...\n")
		linker := b.cfg.Linker
		if linker == "" {
			linker = "g++"
		}
		var sb strings.Builder
		sb.WriteString(linker)
		sb.WriteByte(' ')
		if b.cfg.LinkerFlags != "" {
			sb.WriteString(b.cfg.LinkerFlags)
			sb.WriteByte(' ')
		}
		sb.WriteString(b.quotedObjects())
		for _, lib := range b.cfg.StaticLibs {
			sb.WriteString(`"` + lib + `" `)
		}
		sb.WriteString(`-o "` + outPath + `"`)
		cmd = sb.String()
	}

	term.ExecSystem(cmd)

	if b.cfg.Post != "" {
		term.ExecSystem(b.cfg.Post)
	}
	return nil
}

func (b *Build) quotedObjects() string {
	var sb strings.Builder
	for _, obj := range b.objects {
		sb.WriteString(`"` + obj + `" `)
	}
	return sb.String()
}

func stemOf(relPath string) string {
	base := filepath.Base(relPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// commandSink is the subset of Scheduler that Build needs to enqueue
// compile commands; kept narrow so the solution package doesn't import the
// scheduler engine.
type commandSink interface {
	AddCommand(title, command string, failIfNonZero bool)
}
