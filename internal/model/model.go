package model

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// avatarURLTemplate is keyed by the contact id; the avatar service uses it as an image seed.
const avatarURLTemplate = "https://i.pravatar.cc/50?img=%s"

// Contact is one directory record. Records are values; once loaded they are never mutated.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// FirstName returns the part of Name before the first whitespace character,
// or the whole name when it has none.
func (c Contact) FirstName() string {
	if i := strings.IndexFunc(c.Name, unicode.IsSpace); i >= 0 {
		return c.Name[:i]
	}
	return c.Name
}

// Initial is the upper-cased first letter of the name ("?" when the name is empty).
func (c Contact) Initial() string {
	r, _ := utf8.DecodeRuneInString(c.Name)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

func (c Contact) AvatarURL() string {
	return fmt.Sprintf(avatarURLTemplate, c.ID)
}
