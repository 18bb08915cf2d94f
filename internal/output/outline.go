// Package output renders walked entries as an indented outline and as
// structured json or xml documents.
package output

import (
	"strings"

	"github.com/temirov/dirlist/internal/types"
)

const (
	rootLinePrefix    = "/"
	rootLineSuffix    = "/"
	indentationUnit   = "|   "
	branchMarker      = "|-- "
	lineTerminator    = "\n"
	IndentationLength = len(indentationUnit)
)

// Outline is the rendered text of one walk. The first line is always the root line.
type Outline struct {
	lines []string
}

// RenderOutline formats entries beneath a root line built from rootDisplayName.
// Each entry at depth d is prefixed by d indentation units and the branch marker.
func RenderOutline(rootDisplayName string, entries []types.Entry) Outline {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, rootLinePrefix+rootDisplayName+rootLineSuffix)
	for _, entry := range entries {
		lines = append(lines, renderEntryLine(entry))
	}
	return Outline{lines: lines}
}

func renderEntryLine(entry types.Entry) string {
	var builder strings.Builder
	builder.Grow(entry.Depth*len(indentationUnit) + len(branchMarker) + len(entry.Name))
	for level := 0; level < entry.Depth; level++ {
		builder.WriteString(indentationUnit)
	}
	builder.WriteString(branchMarker)
	builder.WriteString(entry.Name)
	return builder.String()
}

// Lines returns a copy of the rendered lines without terminators.
func (outline Outline) Lines() []string {
	return append([]string(nil), outline.lines...)
}

// LineCount reports the number of lines including the root line.
func (outline Outline) LineCount() int {
	return len(outline.lines)
}

// String joins the lines, terminating every line including the last.
func (outline Outline) String() string {
	var builder strings.Builder
	for _, line := range outline.lines {
		builder.WriteString(line)
		builder.WriteString(lineTerminator)
	}
	return builder.String()
}
