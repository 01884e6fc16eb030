package solution

import "encoding/json"

// manifestDoc is the on-disk shape of solution.json (§6). Paths.Scan may be
// a single string or an array in the source JSON, so it is decoded through
// stringOrSlice rather than a plain []string.
type manifestDoc struct {
	Version   string                 `json:"version"`
	Type      string                 `json:"type"`
	Paths     manifestPaths          `json:"paths"`
	Solutions map[string]string      `json:"solutions"`
	Files     []string               `json:"files"`
	Builds    map[string]buildConfig `json:"builds"`
}

type manifestPaths struct {
	Scan  stringOrSlice `json:"scan"`
	Build string        `json:"build"`
	Tmp   string        `json:"tmp"`
}

type buildConfig struct {
	Compiler      string                          `json:"compiler"`
	CompilerFlags string                          `json:"compilerFlags"`
	Paths         buildIncludeLibPaths            `json:"paths"`
	Defines       []string                        `json:"defines"`
	Linker        string                          `json:"linker"`
	LinkerFlags   string                          `json:"linkerFlags"`
	StaticLibs    []string                        `json:"staticLibs"`
	Archiver      string                          `json:"archiver"`
	Type          string                          `json:"type"`
	OutName       string                          `json:"outname"`
	Pre           string                          `json:"pre"`
	Post          string                          `json:"post"`
	Solutions     map[string]subSolutionBuildRef `json:"solutions"`
}

type buildIncludeLibPaths struct {
	Include []string `json:"include"`
	Lib     []string `json:"lib"`
}

type subSolutionBuildRef struct {
	Build string `json:"build"`
}

// stringOrSlice decodes a JSON value that is either a bare string or an
// array of strings into a []string, matching paths.scan's documented shape.
type stringOrSlice []string

func (s *stringOrSlice) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = []string{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}
