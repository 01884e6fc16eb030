package solution

// kind distinguishes the built-in solution behaviors a manifest's "type"
// field can select. Both registered kinds share the same build/link engine;
// they differ only in whether automatic source discovery is implemented.
type kind int

const (
	kindDefault kind = iota
	kindCPP
)

// defaultTypeName and cppTypeName are the manifest "type" strings the two
// built-in kinds answer to, matching SOLUTION_CPP_TYPE_NAME's counterpart.
const (
	defaultTypeName = "default"
	cppTypeName     = "c/cpp"
)

var registry = map[string]kind{}

// register associates a manifest "type" string with a built-in kind. It is
// called from init() the way the original registers compiled-in plugins
// before main() runs; there is currently no mechanism for an out-of-tree
// plugin to call it, matching the Non-goal on dynamic plugin loading.
func register(name string, k kind) {
	registry[name] = k
}

func init() {
	register(defaultTypeName, kindDefault)
	register(cppTypeName, kindCPP)
}

func lookupKind(typeName string) (kind, bool) {
	if typeName == "" {
		typeName = defaultTypeName
	}
	k, ok := registry[typeName]
	return k, ok
}
