package directory

import (
	"strings"

	"directory-cli/internal/model"
)

// Matches reports whether c is visible for the search text: the name contains the
// text ignoring case, or the phone contains it verbatim. Empty text matches everything.
// Case folding is strings.ToLower (Unicode simple case mapping, no locale or special casing).
func Matches(c model.Contact, text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(text)) ||
		strings.Contains(c.Phone, text)
}

// Filter returns the contacts that match text, in their original order.
// The result is never nil; an empty slice means nothing matched.
func Filter(contacts []model.Contact, text string) []model.Contact {
	out := make([]model.Contact, 0, len(contacts))
	for _, c := range contacts {
		if Matches(c, text) {
			out = append(out, c)
		}
	}
	return out
}
