package store

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed data/contacts.json
var embeddedContacts []byte

// Embedded returns the sample dataset bundled with the binary.
func Embedded() (Contacts, error) {
	cs, err := LoadJSON(bytes.NewReader(embeddedContacts))
	if err != nil {
		return Contacts{}, fmt.Errorf("embedded dataset: %w", err)
	}
	return cs, nil
}

// Source names where a dataset came from (for status lines and `dataset check`).
type Source struct {
	Path string `json:"path,omitempty"`
	Kind string `json:"kind"`
}

// LoadFile loads a dataset, choosing the decoder by file extension.
func LoadFile(ctx context.Context, path string) (Contacts, Source, error) {
	path = filepath.Clean(strings.TrimSpace(path))
	switch kind := datasetKind(path); kind {
	case "json":
		b, err := os.ReadFile(path)
		if err != nil {
			return Contacts{}, Source{}, err
		}
		cs, err := LoadJSON(bytes.NewReader(b))
		if err != nil {
			return Contacts{}, Source{}, fmt.Errorf("%s: %w", path, err)
		}
		return cs, Source{Path: path, Kind: kind}, nil
	case "sqlite":
		cs, err := LoadSQLite(ctx, path)
		if err != nil {
			return Contacts{}, Source{}, fmt.Errorf("%s: %w", path, err)
		}
		return cs, Source{Path: path, Kind: kind}, nil
	default:
		return Contacts{}, Source{}, fmt.Errorf("unsupported dataset %q (expected .json, .sqlite or .db)", path)
	}
}

// Load resolves the dataset path (explicit path, then config dataPath) and falls back
// to the embedded sample dataset when neither is set.
func Load(ctx context.Context, path string) (Contacts, Source, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		cfg, err := LoadConfig()
		if err != nil {
			return Contacts{}, Source{}, fmt.Errorf("load config: %w", err)
		}
		path = strings.TrimSpace(cfg.DataPath)
	}
	if path == "" {
		cs, err := Embedded()
		return cs, Source{Kind: "embedded"}, err
	}
	return LoadFile(ctx, path)
}

func datasetKind(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".sqlite", ".sqlite3", ".db":
		return "sqlite"
	default:
		return ""
	}
}
