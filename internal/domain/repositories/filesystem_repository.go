package repositories

// FilesystemRepository is the minimal set of filesystem probes and mutations
// the synchronizer needs.
type FilesystemRepository interface {
	Exists(path string) bool
	// CreateDirectory creates path and its parents. It is a no-op when path exists.
	CreateDirectory(path string) error
	// DeleteTree removes path and everything below it.
	DeleteTree(path string) error
}
