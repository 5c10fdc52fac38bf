package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *Model, width int) string {
	left := " " + strings.Join([]string{
		keyHint(pagerKeys.NextPage),
		keyHint(pagerKeys.PrevPage),
		keyHint(pagerKeys.Quit),
	}, "  ")
	right := fmt.Sprintf("Page %d/%d ", m.page+1, len(m.pages))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func keyHint(b key.Binding) string {
	h := b.Help()
	return keyStyle.Render(h.Key) + " " + descStyle.Render(h.Desc)
}
