package tui

import (
	"io"
	"log"
	"os"
	"strings"

	"directory-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive directory over an already loaded dataset.
//
// Debug logging goes to DIRECTORY_TUI_DEBUG_LOG when set; otherwise the standard
// logger is silenced so background messages cannot scribble over the alt screen.
func Run(cs store.Contacts, opts Options) error {
	applyColorProfilePreference()
	opts.Theme = applyThemePreference(opts.Theme)

	if p := strings.TrimSpace(os.Getenv("DIRECTORY_TUI_DEBUG_LOG")); p != "" {
		f, err := tea.LogToFile(p, "directory")
		if err != nil {
			return err
		}
		defer f.Close()
		opts.Debug = true
		log.Printf("start source=%s contacts=%d theme=%s", sourceLabel(opts.Source), cs.Len(), opts.Theme)
	} else {
		log.SetOutput(io.Discard)
	}

	m := newAppModel(cs, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
