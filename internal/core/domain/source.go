package domain

// SourceFile is a manifest-declared source resolved against disk: its
// relative path exists and carries a seconds-resolution mtime.
type SourceFile struct {
	RelPath string
	Path    string
	MTime   int64
}
