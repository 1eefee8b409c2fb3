package store

import (
	"directory-cli/internal/model"
)

// Contacts is the ordered, read-only contact collection loaded at startup.
// Order is source order. The zero value is an empty collection.
type Contacts struct {
	list []model.Contact
	byID map[string]int
}

// NewContacts validates cs and wraps a private copy of it.
func NewContacts(cs []model.Contact) (Contacts, error) {
	if err := validateContacts(cs); err != nil {
		return Contacts{}, err
	}
	list := make([]model.Contact, len(cs))
	copy(list, cs)
	byID := make(map[string]int, len(list))
	for i, c := range list {
		byID[c.ID] = i
	}
	return Contacts{list: list, byID: byID}, nil
}

func (c Contacts) Len() int { return len(c.list) }

// At returns the i-th contact in source order. It panics when i is out of range, like a slice index.
func (c Contacts) At(i int) model.Contact { return c.list[i] }

// All returns a copy of the collection in source order.
func (c Contacts) All() []model.Contact {
	out := make([]model.Contact, len(c.list))
	copy(out, c.list)
	return out
}

func (c Contacts) ByID(id string) (model.Contact, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Contact{}, false
	}
	return c.list[i], true
}
