package entities

// Action is the decision taken for a repository before any mutating operation.
type Action int

const (
	// ActionClone clones a repository whose local path does not exist.
	ActionClone Action = iota
	// ActionRecreateAndClone deletes a directory without VCS metadata and clones again.
	ActionRecreateAndClone
	// ActionUpdate switches to the default branch and pulls.
	ActionUpdate
	// ActionSkip performs nothing; the outcome was already decided while resolving.
	ActionSkip
)

func (a Action) String() string {
	switch a {
	case ActionClone:
		return "clone"
	case ActionRecreateAndClone:
		return "recreate"
	case ActionUpdate:
		return "update"
	case ActionSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// TreeStatus is the result of a working tree status query.
type TreeStatus int

const (
	// TreeClean means there are no uncommitted changes.
	TreeClean TreeStatus = iota
	// TreeDirty means the working tree or the index differ from HEAD.
	TreeDirty
)

func (s TreeStatus) String() string {
	if s == TreeDirty {
		return "dirty"
	}
	return "clean"
}
