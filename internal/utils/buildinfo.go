package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const (
	unknownVersion     = "unknown"
	develBuildVersion  = "(devel)"
	gitExecutableName  = "git"
	gitDescribeCommand = "describe"
)

// GetApplicationVersion reports the module version embedded by the Go toolchain,
// falling back to git describe when running from a source checkout.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != EmptyString && buildInfo.Main.Version != develBuildVersion {
		return buildInfo.Main.Version
	}

	repositoryDirectory, found := findRepositoryDirectory(".")
	if !found {
		return unknownVersion
	}
	// #nosec G204
	describeCommand := exec.Command(gitExecutableName, gitDescribeCommand, "--tags", "--always", "--dirty")
	describeCommand.Dir = repositoryDirectory
	describeOutput, describeError := describeCommand.Output()
	if describeError != nil || len(describeOutput) == 0 {
		return unknownVersion
	}
	return strings.TrimSpace(string(describeOutput))
}

// findRepositoryDirectory walks upward from startDirectory looking for a directory holding GitDirectoryName.
func findRepositoryDirectory(startDirectory string) (string, bool) {
	currentDirectory, absoluteError := filepath.Abs(startDirectory)
	if absoluteError != nil {
		return EmptyString, false
	}
	for {
		fileInformation, statError := os.Stat(filepath.Join(currentDirectory, GitDirectoryName))
		if statError == nil && fileInformation.IsDir() {
			return currentDirectory, true
		}
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			return EmptyString, false
		}
		currentDirectory = parentDirectory
	}
}
