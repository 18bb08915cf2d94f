// Package viewer presents a rendered outline in a scrollable terminal window.
package viewer

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	footerTemplate     = "%3.f%%  lines %d  (q to close)"
	headerBottomMargin = 1
	footerTopMargin    = 1
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Presenter shows text to the user.
type Presenter interface {
	Present(title string, text string) error
}

// Service implements Presenter with a Bubble Tea program drawn on stderr,
// so stdout stays available for piping the outline.
type Service struct{}

// NewService constructs a viewer Service.
func NewService() *Service {
	return &Service{}
}

// Present blocks until the user closes the window.
func (service *Service) Present(title string, text string) error {
	program := tea.NewProgram(newModel(title, text), tea.WithOutput(os.Stderr), tea.WithAltScreen())
	if _, runError := program.Run(); runError != nil {
		return fmt.Errorf("run result viewer: %w", runError)
	}
	return nil
}

var _ Presenter = (*Service)(nil)

// model is the Bubble Tea model of the result window.
type model struct {
	title     string
	content   string
	lineCount int
	viewport  viewport.Model
	ready     bool
}

func newModel(title string, content string) model {
	return model{
		title:     title,
		content:   content,
		lineCount: countLines(content),
		viewport:  viewport.New(0, 0),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "enter":
			return m, tea.Quit
		case "home", "g":
			m.viewport.GotoTop()
			return m, nil
		case "end", "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView()) + headerBottomMargin
		footerHeight := lipgloss.Height(m.footerView()) + footerTopMargin
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		if m.viewport.Height < 0 {
			m.viewport.Height = 0
		}
		m.viewport.YPosition = headerHeight
		if !m.ready {
			m.viewport.SetContent(m.content)
			m.ready = true
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.headerView() + "\n\n" + m.viewport.View() + "\n\n" + m.footerView()
}

func (m model) headerView() string {
	return titleStyle.Render(m.title)
}

func (m model) footerView() string {
	return footerStyle.Render(fmt.Sprintf(footerTemplate, m.viewport.ScrollPercent()*100, m.lineCount))
}

func countLines(content string) int {
	lineCount := 0
	for _, character := range content {
		if character == '\n' {
			lineCount++
		}
	}
	if len(content) > 0 && content[len(content)-1] != '\n' {
		lineCount++
	}
	return lineCount
}
