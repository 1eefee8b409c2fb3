package tui

import (
	"strings"

	"directory-cli/internal/directory"

	"github.com/charmbracelet/lipgloss"
)

// renderDetail draws the presenter output as a bordered card with the two action hints.
func renderDetail(d directory.DetailView, width int) string {
	if !d.Shown {
		return ""
	}
	if width < 24 {
		width = 24
	}
	inner := width - 4

	body := renderMarkdown(d.Markdown(), inner)

	key := lipgloss.NewStyle().
		Foreground(colorAccentFg).
		Background(colorAccent).
		Bold(true).
		Padding(0, 1)
	actions := strings.Join([]string{
		key.Render("c") + " Call " + d.Phone,
		key.Render("e") + " Email " + d.Email,
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(width - 2).
		Render(body + "\n\n" + actions)
}
