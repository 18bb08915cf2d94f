package output_test

import (
	"strings"
	"testing"

	"github.com/temirov/dirlist/internal/output"
	"github.com/temirov/dirlist/internal/types"
)

const projectDisplayName = "proj"

func TestRenderOutlineExamples(t *testing.T) {
	testCases := []struct {
		name     string
		entries  []types.Entry
		expected string
	}{
		{
			name: "file_and_subdirectory",
			entries: []types.Entry{
				{Name: "a.txt", Depth: 0},
				{Name: "sub", Depth: 0, IsDirectory: true},
				{Name: "b.txt", Depth: 1},
			},
			expected: "/proj/\n|-- a.txt\n|-- sub\n|   |-- b.txt\n",
		},
		{
			name: "subdirectory_excluded",
			entries: []types.Entry{
				{Name: "a.txt", Depth: 0},
			},
			expected: "/proj/\n|-- a.txt\n",
		},
		{
			name:     "empty_root",
			entries:  nil,
			expected: "/proj/\n",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			rendered := output.RenderOutline(projectDisplayName, testCase.entries).String()
			if rendered != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, rendered)
			}
		})
	}
}

func TestRenderOutlineIsIdempotent(t *testing.T) {
	entries := []types.Entry{
		{Name: "cmd", Depth: 0, IsDirectory: true},
		{Name: "main.go", Depth: 1},
		{Name: "internal", Depth: 0, IsDirectory: true},
		{Name: "walker", Depth: 1, IsDirectory: true},
		{Name: "walker.go", Depth: 2},
	}
	first := output.RenderOutline(projectDisplayName, entries).String()
	second := output.RenderOutline(projectDisplayName, entries).String()
	if first != second {
		t.Fatalf("rendering differs between runs:\n%s\n%s", first, second)
	}
}

func TestRenderOutlineIndentationMatchesDepth(t *testing.T) {
	entries := []types.Entry{
		{Name: "level0", Depth: 0, IsDirectory: true},
		{Name: "level1", Depth: 1, IsDirectory: true},
		{Name: "level2", Depth: 2, IsDirectory: true},
		{Name: "level3.txt", Depth: 3},
		{Name: "back0.txt", Depth: 0},
	}
	outline := output.RenderOutline(projectDisplayName, entries)
	lines := outline.Lines()
	if outline.LineCount() != len(entries)+1 {
		t.Fatalf("expected %d lines, got %d", len(entries)+1, outline.LineCount())
	}
	if lines[0] != "/proj/" {
		t.Fatalf("unexpected root line %q", lines[0])
	}
	for index, entry := range entries {
		line := lines[index+1]
		expectedSuffix := "|-- " + entry.Name
		if !strings.HasSuffix(line, expectedSuffix) {
			t.Fatalf("line %q does not end with %q", line, expectedSuffix)
		}
		prefix := strings.TrimSuffix(line, expectedSuffix)
		if len(prefix) != output.IndentationLength*entry.Depth {
			t.Fatalf("line %q: expected prefix length %d, got %d", line, 4*entry.Depth, len(prefix))
		}
		if prefix != strings.Repeat("|   ", entry.Depth) {
			t.Fatalf("line %q has unexpected prefix %q", line, prefix)
		}
	}
}

func TestOutlineLinesReturnsCopy(t *testing.T) {
	outline := output.RenderOutline(projectDisplayName, []types.Entry{{Name: "a.txt"}})
	lines := outline.Lines()
	lines[0] = "mutated"
	if outline.Lines()[0] != "/proj/" {
		t.Fatalf("outline was mutated through Lines()")
	}
}
