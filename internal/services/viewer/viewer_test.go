package viewer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutline = "/proj/\n|-- a.txt\n|-- sub\n|   |-- b.txt\n"

func TestModelRendersOutlineAfterWindowSize(t *testing.T) {
	assert := assert.New(t)

	initial := newModel("Directory Listing Result", sampleOutline)
	assert.Equal("Loading...", initial.View())

	updated, _ := initial.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	resized, ok := updated.(model)
	require.True(t, ok)

	assert.True(resized.ready)
	view := resized.View()
	assert.Contains(view, "Directory Listing Result")
	assert.Contains(view, "|   |-- b.txt")
	assert.Contains(view, "lines 4")
}

func TestModelQuitKeys(t *testing.T) {
	for _, keyName := range []string{"q", "esc", "ctrl+c"} {
		keyName := keyName
		t.Run(keyName, func(t *testing.T) {
			var keyMessage tea.KeyMsg
			switch keyName {
			case "q":
				keyMessage = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
			case "esc":
				keyMessage = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				keyMessage = tea.KeyMsg{Type: tea.KeyCtrlC}
			}
			_, cmd := newModel("title", sampleOutline).Update(keyMessage)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModelClampsViewportHeight(t *testing.T) {
	updated, _ := newModel("title", sampleOutline).Update(tea.WindowSizeMsg{Width: 10, Height: 1})
	resized := updated.(model)
	assert.Equal(t, 0, resized.viewport.Height)
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 1, countLines("/proj/\n"))
	assert.Equal(t, 2, countLines("/proj/\n|-- a.txt"))
	assert.Equal(t, 4, strings.Count(sampleOutline, "\n"))
}
