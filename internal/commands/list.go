// Package commands contains the core logic for data collection for each command.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/dirlist/internal/output"
	"github.com/temirov/dirlist/internal/services/persistence"
	"github.com/temirov/dirlist/internal/types"
	"github.com/temirov/dirlist/internal/utils"
	"github.com/temirov/dirlist/internal/walker"
)

const (
	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorWorkingDirectoryFormat is used when no root is given and the working directory is unknown.
	errorWorkingDirectoryFormat = "determining working directory: %w"
	// errorConfigureWalkerFormat is used when walker options are rejected.
	errorConfigureWalkerFormat = "configuring walker: %w"
)

// ListRequest is the plain-data input of one listing.
type ListRequest struct {
	// RootPath is the directory to list. Empty selects DefaultRootPath, then the working directory.
	RootPath        string
	DefaultRootPath string
	// RawExclusions holds comma separated name lists. When no name remains the default set applies.
	RawExclusions []string
	// Persist writes the outline to types.OutputFileName inside OutputDirectory.
	Persist bool
	// OutputDirectory defaults to the working directory.
	OutputDirectory string
	SortMode        string
	MaxDepth        int
	DetectCycles    bool
}

// ListResult is the plain-data output of one listing.
type ListResult struct {
	RootPath    string
	DisplayName string
	Excluded    walker.ExclusionSet
	Entries     []types.Entry
	Outline     output.Outline
	// PersistedPath is the absolute path written when persistence succeeded.
	PersistedPath string
	// PersistenceError is set when persistence was requested and failed. The outline stays valid.
	PersistenceError error
}

// Listing returns the structured form of the result.
func (result ListResult) Listing() types.Listing {
	return types.Listing{
		Root:        result.RootPath,
		DisplayName: result.DisplayName,
		Entries:     result.Entries,
	}
}

// Lister runs listings and persists outlines through Writer.
type Lister struct {
	Writer persistence.Writer
}

// NewLister constructs a Lister. A nil writer falls back to the filesystem persistence service.
func NewLister(writer persistence.Writer) *Lister {
	if writer == nil {
		writer = persistence.NewService()
	}
	return &Lister{Writer: writer}
}

// ResolveExclusions builds the exclusion set from raw comma separated inputs,
// using types.DefaultExcludedNames when the inputs name nothing.
func ResolveExclusions(rawExclusions []string) walker.ExclusionSet {
	names := utils.SplitNameList(rawExclusions)
	if len(names) == 0 {
		names = types.DefaultExcludedNames()
	}
	return walker.NewExclusionSet(names)
}

// List walks the requested root, renders its outline and optionally persists it.
// An unreadable root fails the whole listing; a persistence failure does not.
func (lister *Lister) List(request ListRequest) (ListResult, error) {
	rootPath, rootError := resolveRootPath(request)
	if rootError != nil {
		return ListResult{}, rootError
	}
	excluded := ResolveExclusions(request.RawExclusions)
	treeWalker, walkerError := walker.New(walker.Options{
		Excluded:     excluded,
		SortMode:     request.SortMode,
		MaxDepth:     request.MaxDepth,
		DetectCycles: request.DetectCycles,
	})
	if walkerError != nil {
		return ListResult{}, fmt.Errorf(errorConfigureWalkerFormat, walkerError)
	}

	entries, walkError := treeWalker.Walk(rootPath)
	if walkError != nil {
		return ListResult{}, walkError
	}
	displayName := utils.DisplayName(rootPath)
	result := ListResult{
		RootPath:    rootPath,
		DisplayName: displayName,
		Excluded:    excluded,
		Entries:     entries,
		Outline:     output.RenderOutline(displayName, entries),
	}

	if request.Persist {
		outputDirectory := request.OutputDirectory
		if strings.TrimSpace(outputDirectory) == "" {
			workingDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				result.PersistenceError = fmt.Errorf(errorWorkingDirectoryFormat, workingDirectoryError)
				return result, nil
			}
			outputDirectory = workingDirectory
		}
		persistedPath, persistError := lister.Writer.Write(outputDirectory, result.Outline.String())
		if persistError != nil {
			result.PersistenceError = persistError
		} else {
			result.PersistedPath = persistedPath
		}
	}
	return result, nil
}

func resolveRootPath(request ListRequest) (string, error) {
	rootPath := strings.TrimSpace(request.RootPath)
	if rootPath == "" {
		rootPath = strings.TrimSpace(request.DefaultRootPath)
	}
	if rootPath == "" {
		workingDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return "", fmt.Errorf(errorWorkingDirectoryFormat, workingDirectoryError)
		}
		rootPath = workingDirectory
	}
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorAbsolutePathFormat, rootPath, absolutePathError)
	}
	return absoluteRootPath, nil
}
