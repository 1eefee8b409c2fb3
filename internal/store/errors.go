package store

import (
	"fmt"
	"strings"

	"directory-cli/internal/model"
)

// SchemaError reports a dataset record that cannot be loaded.
// Index is the zero-based record position in the source (-1 when not record-specific).
type SchemaError struct {
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid dataset: %s", e.Reason)
	}
	if e.Field == "" {
		return fmt.Sprintf("invalid dataset: record %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid dataset: record %d: %s %s", e.Index, e.Field, e.Reason)
}

func validateContacts(cs []model.Contact) error {
	seen := make(map[string]int, len(cs))
	for i, c := range cs {
		if strings.TrimSpace(c.ID) == "" {
			return &SchemaError{Index: i, Field: "id", Reason: "is empty"}
		}
		if strings.TrimSpace(c.Name) == "" {
			return &SchemaError{Index: i, Field: "name", Reason: "is empty"}
		}
		if prev, ok := seen[c.ID]; ok {
			return &SchemaError{Index: i, Field: "id", Reason: fmt.Sprintf("%q duplicates record %d", c.ID, prev)}
		}
		seen[c.ID] = i
	}
	return nil
}
