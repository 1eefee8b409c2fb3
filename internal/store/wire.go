package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"directory-cli/internal/model"
)

// requiredKeys must be present on every JSON record. Values for phone/email may be empty.
var requiredKeys = []string{"id", "name", "phone", "email"}

// LoadJSON reads a JSON array of {id, name, phone, email} records.
// Ids may be JSON strings or numbers; numbers are kept in their literal form ("7", not "7.0").
func LoadJSON(r io.Reader) (Contacts, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Contacts{}, err
	}
	if isNullOrEmpty(b) {
		return Contacts{}, &SchemaError{Index: -1, Reason: "dataset is empty"}
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return Contacts{}, &SchemaError{Index: -1, Reason: "expected a JSON array of contacts: " + err.Error()}
	}

	cs := make([]model.Contact, 0, len(raw))
	for i, rec := range raw {
		c, err := decodeWireContact(i, rec)
		if err != nil {
			return Contacts{}, err
		}
		cs = append(cs, c)
	}
	return NewContacts(cs)
}

func decodeWireContact(i int, rec map[string]json.RawMessage) (model.Contact, error) {
	for _, k := range requiredKeys {
		if isNullOrEmpty(rec[k]) {
			return model.Contact{}, &SchemaError{Index: i, Field: k, Reason: "is missing"}
		}
	}

	id, err := wireID(rec["id"])
	if err != nil {
		return model.Contact{}, &SchemaError{Index: i, Field: "id", Reason: err.Error()}
	}
	var c model.Contact
	c.ID = id
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"name", &c.Name},
		{"phone", &c.Phone},
		{"email", &c.Email},
	} {
		if err := json.Unmarshal(rec[f.key], f.dst); err != nil {
			return model.Contact{}, &SchemaError{Index: i, Field: f.key, Reason: "must be a string"}
		}
	}
	return c, nil
}

func wireID(b json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return s, nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return "", fmt.Errorf("must be a string or number")
	}
	return n.String(), nil
}

func isNullOrEmpty(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	s := strings.TrimSpace(string(b))
	return s == "" || s == "null"
}
