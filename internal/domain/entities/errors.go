package entities

import (
	"errors"
	"fmt"
)

// Stage sentinels. A SyncError matches exactly one of them with errors.Is.
var (
	ErrCloneFailed       = errors.New("clone failed")
	ErrStatusCheckFailed = errors.New("status check failed")
	ErrUpdateFailed      = errors.New("update failed")
)

// SyncError carries the failing stage, the repository name and the
// underlying tool error.
type SyncError struct {
	Stage      error
	Repository string
	Err        error
}

// NewCloneError wraps a clone (or pre-clone cleanup) failure.
func NewCloneError(repository string, err error) *SyncError {
	return &SyncError{Stage: ErrCloneFailed, Repository: repository, Err: err}
}

// NewStatusError wraps a working tree status failure.
func NewStatusError(repository string, err error) *SyncError {
	return &SyncError{Stage: ErrStatusCheckFailed, Repository: repository, Err: err}
}

// NewUpdateError wraps a branch switch or pull failure.
func NewUpdateError(repository string, err error) *SyncError {
	return &SyncError{Stage: ErrUpdateFailed, Repository: repository, Err: err}
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Repository, e.Stage, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the stage sentinel of this error.
func (e *SyncError) Is(target error) bool {
	return target == e.Stage
}

// Detail is the text shown next to the repository name in the report.
func (e *SyncError) Detail() string {
	return fmt.Sprintf("%v: %v", e.Stage, e.Err)
}
