package directory

import (
	"fmt"
	"strings"

	"directory-cli/internal/model"
)

// DetailView is everything the view layer needs to render the contact detail.
// When Shown is false every other field is empty.
type DetailView struct {
	Shown bool `json:"shown"`

	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	Greeting  string `json:"greeting,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`

	CallURI  string `json:"callUri,omitempty"`
	EmailURI string `json:"emailUri,omitempty"`
}

// CallURI is tel: followed by the phone exactly as stored.
func CallURI(c model.Contact) string { return "tel:" + c.Phone }

// EmailURI is mailto: followed by the email exactly as stored.
func EmailURI(c model.Contact) string { return "mailto:" + c.Email }

// Present derives the detail view. A nil contact or visible=false renders nothing.
func Present(c *model.Contact, visible bool) DetailView {
	if c == nil || !visible {
		return DetailView{}
	}
	first := c.FirstName()
	return DetailView{
		Shown:     true,
		ID:        c.ID,
		Name:      c.Name,
		FirstName: first,
		Greeting:  fmt.Sprintf("Connect with %s!", first),
		Phone:     c.Phone,
		Email:     c.Email,
		AvatarURL: c.AvatarURL(),
		CallURI:   CallURI(*c),
		EmailURI:  EmailURI(*c),
	}
}

// Markdown renders the detail as a small card. It is "" when the view is hidden.
func (d DetailView) Markdown() string {
	if !d.Shown {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Name)
	fmt.Fprintf(&b, "%s\n\n", d.Greeting)
	fmt.Fprintf(&b, "- **Phone:** %s\n", orDash(d.Phone))
	fmt.Fprintf(&b, "- **Email:** %s\n", orDash(d.Email))
	fmt.Fprintf(&b, "- **Avatar:** %s\n", d.AvatarURL)
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
