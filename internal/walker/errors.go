package walker

import (
	"errors"
	"fmt"
)

// ErrRootUnreadable reports that the root directory of a walk could not be listed.
var ErrRootUnreadable = errors.New("root directory unreadable")

// errNotDirectory marks a root path that exists but is not a directory.
var errNotDirectory = errors.New("not a directory")

const rootUnreadableFormat = "listing root %s: %v"

// RootUnreadableError carries the root path and the underlying listing failure.
type RootUnreadableError struct {
	Path string
	Err  error
}

func (rootError *RootUnreadableError) Error() string {
	return fmt.Sprintf(rootUnreadableFormat, rootError.Path, rootError.Err)
}

func (rootError *RootUnreadableError) Unwrap() error {
	return rootError.Err
}

// Is lets errors.Is match any RootUnreadableError against ErrRootUnreadable.
func (rootError *RootUnreadableError) Is(target error) bool {
	return target == ErrRootUnreadable
}
