package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// contactDelegate renders a contact as a two-line card: avatar initial + name,
// then phone/email.
type contactDelegate struct{}

func newContactDelegate() contactDelegate { return contactDelegate{} }

func (d contactDelegate) Height() int  { return 2 }
func (d contactDelegate) Spacing() int { return 1 }
func (d contactDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d contactDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(contactItem)
	if !ok {
		return
	}
	contentW := m.Width()
	if contentW < 8 {
		fmt.Fprint(w, "")
		return
	}

	avatar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(colorAvatarBg).
		Bold(true).
		Render(" " + it.contact.Initial() + " ")
	name := lipgloss.NewStyle().Bold(true).Render(it.contact.Name)
	detail := styleMuted().Render(it.Description())

	lines := []string{
		avatar + " " + name,
		"    " + detail,
	}

	selected := index == m.Index()
	for i, line := range lines {
		lines[i] = fitLine(line, contentW)
		if selected {
			lines[i] = lipgloss.NewStyle().
				Background(colorSelectedBg).
				Foreground(colorSelectedFg).
				Render(lines[i])
		}
	}
	fmt.Fprint(w, strings.Join(lines, "\n"))
}

// fitLine pads or cuts s to exactly width cells.
func fitLine(s string, width int) string {
	lineW := xansi.StringWidth(s)
	if lineW < width {
		return s + strings.Repeat(" ", width-lineW)
	}
	if lineW > width {
		return xansi.Cut(s, 0, width)
	}
	return s
}
