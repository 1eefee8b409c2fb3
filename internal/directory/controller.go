// Package directory holds the search and selection state behind the contact list,
// and the detail view derived from it. It has no rendering dependencies.
package directory

import (
	"directory-cli/internal/model"
	"directory-cli/internal/store"
)

// Launcher opens a URI on the host (dialer, mail client). Requests are one-way:
// the controller never observes whether the host could handle them.
type Launcher interface {
	Open(uri string)
}

// FocusReleaser drops input focus (e.g. hides the keyboard or blurs the search box).
type FocusReleaser interface {
	ReleaseFocus()
}

// Controller owns the search text and the latched selection.
//
// The zero value is not usable; construct with New.
type Controller struct {
	contacts []model.Contact

	searchText string

	selected    model.Contact
	hasSelected bool
	visible     bool

	launcher Launcher
	focus    FocusReleaser
}

type Option func(*Controller)

func WithLauncher(l Launcher) Option {
	return func(c *Controller) { c.launcher = l }
}

func WithFocusReleaser(f FocusReleaser) Option {
	return func(c *Controller) { c.focus = f }
}

func New(contacts store.Contacts, opts ...Option) *Controller {
	c := &Controller{contacts: contacts.All()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) SearchText() string { return c.searchText }

// SetSearchText replaces the search text. Any string is accepted, including "".
func (c *Controller) SetSearchText(text string) {
	c.searchText = text
}

// ClearSearch empties the search text and then releases input focus.
// Selection is left alone.
func (c *Controller) ClearSearch() {
	c.SetSearchText("")
	if c.focus != nil {
		c.focus.ReleaseFocus()
	}
}

// VisibleSubset is recomputed from the store on every call.
func (c *Controller) VisibleSubset() []model.Contact {
	return Filter(c.contacts, c.searchText)
}

func (c *Controller) ResultCount() int {
	n := 0
	for _, ct := range c.contacts {
		if Matches(ct, c.searchText) {
			n++
		}
	}
	return n
}

// SelectContact selects ct and shows its detail. ct is expected to come from the store.
func (c *Controller) SelectContact(ct model.Contact) {
	c.selected = ct
	c.hasSelected = true
	c.visible = true
}

// DismissDetail hides the detail view but keeps the selected contact.
func (c *Controller) DismissDetail() {
	c.visible = false
}

// Selection returns the latched contact (ok=false if nothing was ever selected)
// and whether its detail is currently shown.
func (c *Controller) Selection() (ct model.Contact, ok bool, visible bool) {
	return c.selected, c.hasSelected, c.visible && c.hasSelected
}

// Detail is the presenter output for the current selection.
func (c *Controller) Detail() DetailView {
	ct, ok, visible := c.Selection()
	if !ok {
		return Present(nil, visible)
	}
	return Present(&ct, visible)
}

// Call asks the launcher to dial the shown contact. It returns the issued URI,
// or "" when no detail is shown or there is no launcher.
func (c *Controller) Call() string {
	d := c.Detail()
	if !d.Shown || c.launcher == nil {
		return ""
	}
	c.launcher.Open(d.CallURI)
	return d.CallURI
}

// Email is Call for the mailto: action.
func (c *Controller) Email() string {
	d := c.Detail()
	if !d.Shown || c.launcher == nil {
		return ""
	}
	c.launcher.Open(d.EmailURI)
	return d.EmailURI
}
