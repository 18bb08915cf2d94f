// Package utils contains general helper functions used across the dirlist tool.
package utils

import (
	"path/filepath"
	"strings"
)

const (
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// NameListSeparator separates names in a raw exclusion list.
	NameListSeparator = ","
)

// DeduplicateNames removes duplicate names from a slice while preserving order.
// The first occurrence of each unique name is kept.
func DeduplicateNames(names []string) []string {
	encounteredNames := make(map[string]struct{})
	result := make([]string, 0, len(names))
	for _, name := range names {
		if _, exists := encounteredNames[name]; !exists {
			encounteredNames[name] = struct{}{}
			result = append(result, name)
		}
	}
	return result
}

// ContainsString checks if a slice of strings contains a specific target string.
func ContainsString(stringSlice []string, targetString string) bool {
	for _, currentString := range stringSlice {
		if currentString == targetString {
			return true
		}
	}
	return false
}

// SplitNameList splits comma separated raw inputs into trimmed names.
// Empty names are dropped and the first occurrence of a duplicate wins.
func SplitNameList(rawInputs []string) []string {
	var names []string
	for _, rawInput := range rawInputs {
		for _, candidate := range strings.Split(rawInput, NameListSeparator) {
			trimmedName := strings.TrimSpace(candidate)
			if trimmedName == EmptyString {
				continue
			}
			names = append(names, trimmedName)
		}
	}
	return DeduplicateNames(names)
}

// DisplayName returns the base name shown on the first outline line for a root path.
func DisplayName(rootPath string) string {
	cleanedPath := filepath.Clean(rootPath)
	baseName := filepath.Base(cleanedPath)
	if baseName == string(filepath.Separator) {
		return EmptyString
	}
	return baseName
}
