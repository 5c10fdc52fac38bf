package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model pages through a rendered report, one document page at a time.
type Model struct {
	title    string
	pages    []string
	page     int
	viewport viewport.Model
	width    int
	height   int
}

// NewModel creates a pager over pages.
func NewModel(title string, pages []string) Model {
	m := Model{
		title:    title,
		pages:    pages,
		viewport: viewport.New(80, 24),
	}
	m.viewport.SetContent(pages[0])
	return m
}

// Page returns the index of the page on screen.
func (m Model) Page() int {
	return m.page
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 1) // header + status bar
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, pagerKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, pagerKeys.NextPage):
			m.setPage(m.page + 1)
			return m, nil
		case key.Matches(msg, pagerKeys.PrevPage):
			m.setPage(m.page - 1)
			return m, nil
		case key.Matches(msg, pagerKeys.First):
			m.setPage(0)
			return m, nil
		case key.Matches(msg, pagerKeys.Last):
			m.setPage(len(m.pages) - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) setPage(n int) {
	if n < 0 || n >= len(m.pages) || n == m.page {
		return
	}
	m.page = n
	m.viewport.SetContent(m.pages[n])
	m.viewport.GotoTop()
}

func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = m.viewport.Width
	}
	header := headerStyle.Width(width).Render(m.title)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		renderStatusBar(&m, width),
	)
}
