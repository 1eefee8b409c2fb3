package tui

import (
	"directory-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

// contactItem adapts a contact to bubbles/list.
type contactItem struct {
	contact model.Contact
}

func (i contactItem) FilterValue() string { return i.contact.Name }
func (i contactItem) Title() string       { return i.contact.Name }
func (i contactItem) Description() string {
	return "Phone: " + i.contact.Phone + "  Email: " + i.contact.Email
}

func contactItems(cs []model.Contact) []list.Item {
	items := make([]list.Item, 0, len(cs))
	for _, c := range cs {
		items = append(items, contactItem{contact: c})
	}
	return items
}

func newContactList() list.Model {
	l := list.New([]list.Item{}, newContactDelegate(), 0, 0)
	l.Title = "Contacts"
	// We render our own header, search box and footer; keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	// Filtering is owned by the directory controller, not the list.
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("contact", "contacts")

	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	l.KeyMap.CursorUp.SetKeys(append(cursorUpKeys, "ctrl+p")...)
	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	l.KeyMap.CursorDown.SetKeys(append(cursorDownKeys, "ctrl+n")...)
	return l
}

func selectListItemByID(l *list.Model, id string) bool {
	for i, it := range l.Items() {
		if ci, ok := it.(contactItem); ok && ci.contact.ID == id {
			l.Select(i)
			return true
		}
	}
	return false
}
