// Package walker enumerates a directory tree depth-first, pre-order, producing
// one types.Entry per visited filesystem object.
//
// Only the root directory is required to be listable. A subdirectory that
// cannot be listed contributes no children and the walk continues.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/temirov/dirlist/internal/types"
)

const (
	errorUnsupportedSortModeFormat = "unsupported sort mode '%s'"
	errorNegativeMaxDepthFormat    = "max depth must not be negative, got %d"
	readAllDirectoryEntries        = -1
)

// ExclusionSet holds bare names skipped at every level of the walk.
type ExclusionSet map[string]struct{}

// NewExclusionSet builds an ExclusionSet from names. Matching is case-sensitive.
func NewExclusionSet(names []string) ExclusionSet {
	exclusionSet := make(ExclusionSet, len(names))
	for _, name := range names {
		exclusionSet[name] = struct{}{}
	}
	return exclusionSet
}

// Contains reports whether name is excluded.
func (exclusionSet ExclusionSet) Contains(name string) bool {
	_, excluded := exclusionSet[name]
	return excluded
}

// Names returns the excluded names in lexicographic order.
func (exclusionSet ExclusionSet) Names() []string {
	names := make([]string, 0, len(exclusionSet))
	for name := range exclusionSet {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options configures a Walker. The zero value walks in host listing order with
// no depth limit and no cycle detection.
type Options struct {
	Excluded ExclusionSet
	// SortMode is one of types.SortNone, types.SortName or types.SortDirsFirst.
	SortMode string
	// MaxDepth limits emitted entries to depth < MaxDepth. Zero means unlimited.
	MaxDepth int
	// DetectCycles stops descending into a directory that is the same file as one of its ancestors.
	DetectCycles bool
}

// Walker lists directory trees using fixed Options. It holds no state between walks.
type Walker struct {
	options Options
}

// New validates options and returns a Walker.
func New(options Options) (*Walker, error) {
	switch options.SortMode {
	case "", types.SortNone, types.SortName, types.SortDirsFirst:
	default:
		return nil, fmt.Errorf(errorUnsupportedSortModeFormat, options.SortMode)
	}
	if options.MaxDepth < 0 {
		return nil, fmt.Errorf(errorNegativeMaxDepthFormat, options.MaxDepth)
	}
	return &Walker{options: options}, nil
}

// Walk lists root with the default options, skipping names in excluded.
func Walk(rootDirectoryPath string, excluded ExclusionSet) ([]types.Entry, error) {
	treeWalker := &Walker{options: Options{Excluded: excluded}}
	return treeWalker.Walk(rootDirectoryPath)
}

// Walk returns the entries below rootDirectoryPath in pre-order. The returned
// error matches ErrRootUnreadable when the root itself cannot be listed.
func (treeWalker *Walker) Walk(rootDirectoryPath string) ([]types.Entry, error) {
	rootInfo, rootStatError := os.Stat(rootDirectoryPath)
	if rootStatError != nil {
		return nil, &RootUnreadableError{Path: rootDirectoryPath, Err: rootStatError}
	}
	if !rootInfo.IsDir() {
		return nil, &RootUnreadableError{Path: rootDirectoryPath, Err: errNotDirectory}
	}
	rootChildren, listError := treeWalker.listDirectory(rootDirectoryPath)
	if listError != nil {
		return nil, &RootUnreadableError{Path: rootDirectoryPath, Err: listError}
	}

	var ancestors []os.FileInfo
	if treeWalker.options.DetectCycles {
		ancestors = []os.FileInfo{rootInfo}
	}
	entries := make([]types.Entry, 0, len(rootChildren))
	treeWalker.visit(rootDirectoryPath, rootChildren, 0, ancestors, &entries)
	return entries, nil
}

// visit appends children of currentDirectoryPath at depth and recurses into directories.
func (treeWalker *Walker) visit(currentDirectoryPath string, children []fs.DirEntry, depth int, ancestors []os.FileInfo, entries *[]types.Entry) {
	for _, child := range children {
		if treeWalker.options.Excluded.Contains(child.Name()) {
			continue
		}
		childPath := filepath.Join(currentDirectoryPath, child.Name())
		isDirectory := isDirectoryEntry(childPath, child)
		*entries = append(*entries, types.Entry{
			Name:        child.Name(),
			Depth:       depth,
			IsDirectory: isDirectory,
		})
		if !isDirectory {
			continue
		}
		if treeWalker.options.MaxDepth > 0 && depth+1 >= treeWalker.options.MaxDepth {
			continue
		}

		childAncestors := ancestors
		if treeWalker.options.DetectCycles {
			childInfo, statError := os.Stat(childPath)
			if statError != nil || revisitsAncestor(childInfo, ancestors) {
				continue
			}
			childAncestors = append(ancestors[:len(ancestors):len(ancestors)], childInfo)
		}

		grandchildren, listError := treeWalker.listDirectory(childPath)
		if listError != nil {
			continue
		}
		treeWalker.visit(childPath, grandchildren, depth+1, childAncestors, entries)
	}
}

// listDirectory reads every entry of directoryPath in host order, then applies the sort mode.
func (treeWalker *Walker) listDirectory(directoryPath string) ([]fs.DirEntry, error) {
	directoryHandle, openError := os.Open(directoryPath)
	if openError != nil {
		return nil, openError
	}
	defer directoryHandle.Close()

	directoryEntries, readError := directoryHandle.ReadDir(readAllDirectoryEntries)
	if readError != nil {
		return nil, readError
	}

	switch treeWalker.options.SortMode {
	case types.SortName:
		sort.SliceStable(directoryEntries, func(left, right int) bool {
			return directoryEntries[left].Name() < directoryEntries[right].Name()
		})
	case types.SortDirsFirst:
		directoryFlags := make(map[string]bool, len(directoryEntries))
		for _, directoryEntry := range directoryEntries {
			directoryFlags[directoryEntry.Name()] = isDirectoryEntry(filepath.Join(directoryPath, directoryEntry.Name()), directoryEntry)
		}
		sort.SliceStable(directoryEntries, func(left, right int) bool {
			leftName := directoryEntries[left].Name()
			rightName := directoryEntries[right].Name()
			if directoryFlags[leftName] != directoryFlags[rightName] {
				return directoryFlags[leftName]
			}
			return leftName < rightName
		})
	}
	return directoryEntries, nil
}

// isDirectoryEntry reports whether the entry is a directory, following symbolic links.
func isDirectoryEntry(entryPath string, directoryEntry fs.DirEntry) bool {
	if directoryEntry.IsDir() {
		return true
	}
	if directoryEntry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	targetInfo, statError := os.Stat(entryPath)
	return statError == nil && targetInfo.IsDir()
}

func revisitsAncestor(candidate os.FileInfo, ancestors []os.FileInfo) bool {
	for _, ancestor := range ancestors {
		if os.SameFile(candidate, ancestor) {
			return true
		}
	}
	return false
}
