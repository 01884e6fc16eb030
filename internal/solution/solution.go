// Package solution implements the manifest-driven incremental build model
// (§4.F): parsing solution.json, resolving declared sources against disk,
// recursing into sub-solutions, and tracking which sources are up to date
// against a per-build diff sidecar.
package solution

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/zerr"

	"github.com/deltamake/deltamake/internal/build"
	"github.com/deltamake/deltamake/internal/core/domain"
	"github.com/deltamake/deltamake/internal/core/ports"
)

const manifestFilename = "solution.json"
const diffFilename = "deltamake.json"

// Solution is one parsed solution.json plus its resolved sources and the
// in-memory mirror of its diff sidecar.
type Solution struct {
	kind kind

	term        ports.Terminal
	currentPath string

	buildPath string
	tmpPath   string

	sourcePaths []string
	sourceFiles []string // declared relative paths, manifest order preserved for warnings

	sources      map[string]domain.SourceFile // relPath -> resolved file, sorted on read
	sourceOrder  []string                     // relPath, sorted for deterministic Build() iteration

	subSolutions map[string]string // code -> relative path to sub solution.json
	builds       map[string]buildConfig

	diff *domain.DiffDocument
}

// Load reads and parses a solution.json at path, dispatching on its "type"
// field through the plugin registry (§4.F.1). An unknown type is
// domain.ErrPluginNotFound; a missing required key is
// domain.ErrConfigValueNotSet naming the JSON path.
func Load(path string, term ports.Terminal) (*Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, "solution: can't open file")
	}

	var doc manifestDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "solution: malformed manifest")
	}

	k, ok := lookupKind(doc.Type)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrPluginNotFound, "solution: unknown type"), "type", doc.Type)
	}

	s := &Solution{
		kind:        k,
		term:        term,
		currentPath: filepath.Dir(path),
	}
	if err := s.init(doc); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Solution) init(doc manifestDoc) error {
	if len(doc.Paths.Scan) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrConfigValueNotSet, "solution: missing key"), "path", "paths.scan")
	}
	if doc.Paths.Build == "" {
		return zerr.With(zerr.Wrap(domain.ErrConfigValueNotSet, "solution: missing key"), "path", "paths.build")
	}
	if doc.Paths.Tmp == "" {
		return zerr.With(zerr.Wrap(domain.ErrConfigValueNotSet, "solution: missing key"), "path", "paths.tmp")
	}
	if doc.Builds == nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigValueNotSet, "solution: missing key"), "path", "builds")
	}

	s.sourcePaths = doc.Paths.Scan
	s.buildPath = s.resolve(doc.Paths.Build)
	s.tmpPath = s.resolve(doc.Paths.Tmp)
	s.subSolutions = doc.Solutions
	s.builds = doc.Builds
	s.sourceFiles = doc.Files

	s.resolveSources()

	return nil
}

func (s *Solution) resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(s.currentPath, rel)
}

// resolveSources stats every manifest-declared file; a missing file warns
// and is elided rather than failing the load (§7.2, tested scenario:
// missing source). The stats themselves are independent, order-insensitive
// I/O, so they fan out across up to runtime.NumCPU() goroutines; the shared
// map/slice writes are serialized behind a mutex and final ordering is
// restored by the trailing sort, so the concurrency never leaks into
// resolveSources's observable behavior.
func (s *Solution) resolveSources() {
	s.sources = make(map[string]domain.SourceFile, len(s.sourceFiles))
	s.sourceOrder = nil

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for _, rel := range s.sourceFiles {
		rel := rel
		g.Go(func() error {
			abs := s.resolve(rel)
			info, err := os.Stat(abs)
			if err != nil {
				if s.term != nil {
					s.term.Log(ports.LogWarning, "source not found, skipping: %s\n", rel)
				}
				return nil
			}

			mu.Lock()
			s.sources[rel] = domain.SourceFile{
				RelPath: rel,
				Path:    abs,
				MTime:   info.ModTime().Unix(),
			}
			s.sourceOrder = append(s.sourceOrder, rel)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Strings(s.sourceOrder)
}

// ScanFolders walks sourcePaths for additional source files not explicitly
// listed in the manifest. It is a literal stub for both registered kinds —
// automatic dependency/source discovery is an explicit Non-goal — matching
// the original's ScanFolders/ScanHeaders returning false unconditionally.
func (s *Solution) ScanFolders() bool {
	return false
}

// ScanHeaders mirrors ScanFolders's stub status; present for interface
// symmetry with the original plugin contract.
func (s *Solution) ScanHeaders() bool {
	return false
}

// LoadDiff reads the diff sidecar at path. A missing or unreadable file is
// non-fatal: it returns false and leaves any already-initialized diff
// state untouched, matching the original's silent-miss behavior.
func (s *Solution) LoadDiff(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	var doc domain.DiffDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		if s.term != nil {
			s.term.Log(ports.LogWarning, "malformed diff file, ignoring: %s\n", path)
		}
		return false
	}
	if doc.Version == "" {
		if s.term != nil {
			s.term.Log(ports.LogWarning, "diff file missing version, ignoring: %s\n", path)
		}
		return false
	}
	if doc.Diff == nil {
		doc.Diff = make(map[string]map[string]int64)
	}
	s.diff = &doc
	return true
}

// SaveDiff writes the in-memory diff document to path as pretty-printed,
// two-space-indented JSON.
func (s *Solution) SaveDiff(path string) error {
	s.ensureDiff()
	data, err := json.MarshalIndent(s.diff, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "solution: can't marshal diff")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.Wrap(err, "solution: can't write diff")
	}
	return nil
}

func (s *Solution) ensureDiff() {
	if s.diff == nil {
		s.diff = domain.NewDiffDocument(build.Version)
	}
}

// DiffPath reports the sidecar path adjacent to this solution's manifest.
func (s *Solution) DiffPath() string {
	return filepath.Join(s.currentPath, diffFilename)
}

// GenBuild resolves a named build config into a *Build bound to this
// solution, lazily initializing the diff document on first call. It
// returns domain.ErrBuildNotFound if the name has no entry.
func (s *Solution) GenBuild(name string) (*Build, error) {
	s.ensureDiff()

	cfg, ok := s.builds[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrBuildNotFound, "solution: unknown build"), "build", name)
	}

	return newBuild(s, name, cfg)
}

// CurrentPath exposes the manifest directory for sub-solution resolution.
func (s *Solution) CurrentPath() string { return s.currentPath }
