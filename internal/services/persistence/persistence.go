// Package persistence writes rendered outlines to disk.
package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/dirlist/internal/types"
)

const (
	outputFilePermissions = 0o644
	writeErrorFormat      = "writing %s: %v"
)

// ErrPersistenceFailure reports that an outline could not be written.
var ErrPersistenceFailure = errors.New("outline persistence failed")

// WriteError carries the target path and the underlying I/O failure.
type WriteError struct {
	Path string
	Err  error
}

func (writeError *WriteError) Error() string {
	return fmt.Sprintf(writeErrorFormat, writeError.Path, writeError.Err)
}

func (writeError *WriteError) Unwrap() error {
	return writeError.Err
}

// Is lets errors.Is match any WriteError against ErrPersistenceFailure.
func (writeError *WriteError) Is(target error) bool {
	return target == ErrPersistenceFailure
}

// Writer persists text into a base directory.
type Writer interface {
	Write(baseDirectory string, text string) (string, error)
}

// Service implements Writer on the local filesystem.
type Service struct {
	FileName string
}

// NewService constructs a Service writing types.OutputFileName.
func NewService() *Service {
	return &Service{FileName: types.OutputFileName}
}

// Write stores text verbatim in FileName under baseDirectory and returns the absolute path written.
// A failed write may leave a partial file behind.
func (service *Service) Write(baseDirectory string, text string) (string, error) {
	fileName := service.FileName
	if fileName == "" {
		fileName = types.OutputFileName
	}
	targetPath, absoluteError := filepath.Abs(filepath.Join(baseDirectory, fileName))
	if absoluteError != nil {
		return "", &WriteError{Path: filepath.Join(baseDirectory, fileName), Err: absoluteError}
	}
	// #nosec G306
	if writeError := os.WriteFile(targetPath, []byte(text), outputFilePermissions); writeError != nil {
		return "", &WriteError{Path: targetPath, Err: writeError}
	}
	return targetPath, nil
}

var _ Writer = (*Service)(nil)
