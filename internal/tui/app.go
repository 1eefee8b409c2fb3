package tui

import (
	"fmt"
	"log"
	"strings"

	"directory-cli/internal/directory"
	"directory-cli/internal/launch"
	"directory-cli/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures the interactive directory.
type Options struct {
	Source   store.Source
	Launcher directory.Launcher
	// Theme is the config.json preference (light|dark|auto).
	Theme string
	Debug bool
}

const (
	// splitMinWidth is the narrowest terminal that shows list and detail side by side.
	splitMinWidth = 90
	outerMargin   = 1
)

// searchBox lets the controller release focus from the search input.
// It holds a pointer so every copy of appModel shares the same input.
type searchBox struct{ input *textinput.Model }

func (s searchBox) ReleaseFocus() { s.input.Blur() }

type appModel struct {
	ctrl     *directory.Controller
	source   store.Source
	total    int
	keys     keyMap
	help     help.Model
	search   *textinput.Model
	contacts list.Model

	width  int
	height int

	// statusText is one line of feedback for the last action (e.g. the URI issued).
	statusText string

	debug bool
}

func newAppModel(cs store.Contacts, opts Options) appModel {
	ti := textinput.New()
	ti.Placeholder = "Search contacts..."
	ti.Prompt = "> "
	// No length bound on the search text.
	ti.CharLimit = 0
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorAccent)
	ti.PlaceholderStyle = styleMuted()
	ti.Focus()

	launcher := opts.Launcher
	if launcher == nil {
		launcher = launch.OS{}
	}

	m := appModel{
		source:   opts.Source,
		total:    cs.Len(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		search:   &ti,
		contacts: newContactList(),
		debug:    opts.Debug,
	}
	m.ctrl = directory.New(cs,
		directory.WithLauncher(launcher),
		directory.WithFocusReleaser(searchBox{input: m.search}),
	)
	m.refreshContacts()
	return m
}

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) detailShown() bool {
	_, _, visible := m.ctrl.Selection()
	return visible
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.detailShown() {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		*m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.ctrl.DismissDetail()
		m.resize()
	case key.Matches(msg, m.keys.Call):
		m.showStatus(m.ctrl.Call())
	case key.Matches(msg, m.keys.Email):
		m.showStatus(m.ctrl.Email())
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select):
		// Opens the highlighted contact; selecting the one already open changes nothing.
		m.selectHighlighted()
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.contacts, cmd = m.contacts.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		if m.ctrl.SearchText() != "" {
			m.clearSearch()
		} else if m.search.Focused() {
			m.search.Blur()
		}
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.clearSearch()
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		if m.search.Focused() {
			m.search.Blur()
			return m, nil
		}
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Select):
		m.selectHighlighted()
		return m, nil
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down),
		msg.Type == tea.KeyPgUp, msg.Type == tea.KeyPgDown:
		var cmd tea.Cmd
		m.contacts, cmd = m.contacts.Update(msg)
		return m, cmd
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		*m.search, cmd = m.search.Update(msg)
		if v := m.search.Value(); v != m.ctrl.SearchText() {
			m.ctrl.SetSearchText(v)
			m.refreshContacts()
			m.debugLogf("search text=%q visible=%d", v, len(m.contacts.Items()))
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.contacts, cmd = m.contacts.Update(msg)
	return m, cmd
}

// clearSearch empties the box, then lets the controller clear its text and release focus.
func (m *appModel) clearSearch() {
	m.search.SetValue("")
	m.ctrl.ClearSearch()
	m.refreshContacts()
}

func (m *appModel) selectHighlighted() {
	it, ok := m.contacts.SelectedItem().(contactItem)
	if !ok {
		return
	}
	m.ctrl.SelectContact(it.contact)
	m.statusText = ""
	m.debugLogf("select id=%s", it.contact.ID)
	m.resize()
}

// refreshContacts rebuilds the list from the controller's visible subset, keeping the
// highlighted contact when it is still visible.
func (m *appModel) refreshContacts() {
	curID := ""
	if it, ok := m.contacts.SelectedItem().(contactItem); ok {
		curID = it.contact.ID
	}
	_ = m.contacts.SetItems(contactItems(m.ctrl.VisibleSubset()))
	if curID == "" || !selectListItemByID(&m.contacts, curID) {
		m.contacts.Select(0)
	}
}

func (m *appModel) showStatus(uri string) {
	if uri == "" {
		m.statusText = ""
		return
	}
	m.statusText = "Requested " + uri
	m.debugLogf("open uri=%s", uri)
}

func (m appModel) splitView() bool {
	return m.detailShown() && m.width >= splitMinWidth
}

func (m *appModel) resize() {
	// header + search box (3) + count + status + help, with blank separators.
	h := m.height - 10
	if h < 4 {
		h = 4
	}
	w := m.width - 2*outerMargin
	if w < 20 {
		w = 20
	}
	if m.splitView() {
		w = w / 2
	}
	m.contacts.SetSize(w, h)
	m.search.Width = w - 6
	m.help.Width = m.width
}

func (m appModel) View() string {
	w := m.width - 2*outerMargin
	if w < 20 {
		w = 20
	}

	header := lipgloss.NewStyle().Bold(true).Render("Contacts") +
		styleMuted().Render(fmt.Sprintf("  %d · %s", m.total, sourceLabel(m.source)))

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Background(colorInputBg).
		Width(w - 2)
	if m.search.Focused() {
		searchStyle = searchStyle.BorderForeground(colorAccent)
	}
	searchBar := searchStyle.Render(m.search.View())

	parts := []string{header, searchBar}
	if m.ctrl.SearchText() != "" {
		parts = append(parts, styleMuted().Render(resultsLine(m.ctrl.ResultCount())))
	}

	body := m.viewList()
	d := m.ctrl.Detail()
	if d.Shown {
		if m.splitView() {
			listW := w / 2
			detail := renderDetail(d, w-listW-1)
			body = lipgloss.JoinHorizontal(lipgloss.Top,
				lipgloss.NewStyle().Width(listW).Render(body),
				" ",
				detail,
			)
		} else {
			body = renderDetail(d, w)
		}
	}
	parts = append(parts, body)

	if m.statusText != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorAccent).Render(m.statusText))
	}

	var hm help.KeyMap = listHelp{k: m.keys}
	if d.Shown {
		hm = detailHelp{k: m.keys}
	}
	parts = append(parts, m.help.View(hm))

	return lipgloss.NewStyle().Margin(0, outerMargin).Render(strings.Join(parts, "\n\n"))
}

func (m appModel) viewList() string {
	if len(m.contacts.Items()) > 0 {
		return m.contacts.View()
	}
	return renderEmptyState(m.ctrl.SearchText(), m.total)
}

func renderEmptyState(search string, total int) string {
	st := lipgloss.NewStyle().Foreground(colorEmptyFg).Italic(true)
	if total == 0 {
		return st.Render("No contacts in this dataset.")
	}
	return st.Render(fmt.Sprintf("No contacts match %q.", search))
}

func resultsLine(n int) string {
	if n == 1 {
		return "1 result found"
	}
	return fmt.Sprintf("%d results found", n)
}

func sourceLabel(src store.Source) string {
	if strings.TrimSpace(src.Path) != "" {
		return src.Path
	}
	if src.Kind != "" {
		return src.Kind
	}
	return "-"
}

func (m appModel) debugLogf(format string, args ...any) {
	if !m.debug {
		return
	}
	log.Printf(format, args...)
}
