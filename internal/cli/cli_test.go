package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"directory-cli/internal/launch"
	"directory-cli/internal/store"
)

const scenarioDataset = `[
  {"id": 1, "name": "Alice Smith", "phone": "555-1234", "email": "a@x.com"},
  {"id": 2, "name": "Bob Jones", "phone": "555-9999", "email": "b@x.com"}
]`

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()
	return runCLIWithApp(t, &App{}, args)
}

func runCLIWithApp(t *testing.T, app *App, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := newRootCmd(app)

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func writeDataset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("DIRECTORY_CONFIG_DIR", t.TempDir())
	t.Setenv("DIRECTORY_DATA", "")
	t.Setenv("DIRECTORY_FORMAT", "")
}

func mustEnv(t *testing.T, args ...string) map[string]any {
	t.Helper()
	stdout, stderr, err := runCLI(t, args)
	if err != nil {
		t.Fatalf("command failed: directory %v\nerr: %v\nstderr:\n%s\nstdout:\n%s", args, err, string(stderr), string(stdout))
	}
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal stdout as json envelope: %v\nstdout:\n%s\nargs: %v", err, string(stdout), args)
	}
	if _, ok := env["data"]; !ok {
		t.Fatalf("expected JSON envelope to contain data key; got: %v\nstdout:\n%s", env, string(stdout))
	}
	return env
}

func namesOf(t *testing.T, data any) []string {
	t.Helper()
	items, ok := data.([]any)
	if !ok {
		t.Fatalf("expected data to be a list; got %T", data)
	}
	out := []string{}
	for _, it := range items {
		m, _ := it.(map[string]any)
		name, _ := m["name"].(string)
		out = append(out, name)
	}
	return out
}

func TestContactsList_SearchScenarios(t *testing.T) {
	isolate(t)
	data := writeDataset(t, scenarioDataset)

	cases := []struct {
		search string
		want   []string
	}{
		{search: "ali", want: []string{"Alice Smith"}},
		{search: "555-99", want: []string{"Bob Jones"}},
		{search: "zzz", want: []string{}},
		{search: "", want: []string{"Alice Smith", "Bob Jones"}},
	}
	for _, tc := range cases {
		env := mustEnv(t, "--data", data, "contacts", "list", "--search", tc.search)
		if got := namesOf(t, env["data"]); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("search %q: expected %v, got %v", tc.search, tc.want, got)
		}
		meta, _ := env["meta"].(map[string]any)
		if c, _ := meta["count"].(float64); int(c) != len(tc.want) {
			t.Fatalf("search %q: expected meta.count %d, got %v", tc.search, len(tc.want), meta["count"])
		}
	}
}

func TestContactsList_EnvDataPathAndTableFormat(t *testing.T) {
	isolate(t)
	t.Setenv("DIRECTORY_DATA", writeDataset(t, scenarioDataset))

	stdout, stderr, err := runCLI(t, []string{"contacts", "list", "--format", "table"})
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, stderr)
	}
	out := string(stdout)
	for _, want := range []string{"NAME", "Alice Smith", "Bob Jones", "555-9999"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected table to contain %q; got:\n%s", want, out)
		}
	}
}

func TestContactsList_DefaultsToEmbeddedDataset(t *testing.T) {
	isolate(t)
	env := mustEnv(t, "contacts", "list")
	if got := namesOf(t, env["data"]); len(got) == 0 || got[0] != "Alice Smith" {
		t.Fatalf("expected embedded dataset, got %v", got)
	}
	meta, _ := env["meta"].(map[string]any)
	src, _ := meta["source"].(map[string]any)
	if src["kind"] != "embedded" {
		t.Fatalf("expected embedded source, got %v", meta["source"])
	}
}

func TestContactsShow_DetailView(t *testing.T) {
	isolate(t)
	data := writeDataset(t, scenarioDataset)

	env := mustEnv(t, "--data", data, "contacts", "show", "1")
	d, _ := env["data"].(map[string]any)
	if d["greeting"] != "Connect with Alice!" {
		t.Fatalf("unexpected greeting: %v", d["greeting"])
	}
	if d["callUri"] != "tel:555-1234" || d["emailUri"] != "mailto:a@x.com" {
		t.Fatalf("unexpected action uris: %v / %v", d["callUri"], d["emailUri"])
	}
	if d["shown"] != true {
		t.Fatalf("expected shown=true, got %v", d["shown"])
	}
}

func TestContactsShow_RawMarkdown(t *testing.T) {
	isolate(t)
	data := writeDataset(t, scenarioDataset)
	stdout, _, err := runCLI(t, []string{"--data", data, "contacts", "show", "2", "--raw"})
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Bob Jones\n") {
		t.Fatalf("expected markdown card; got:\n%s", stdout)
	}
}

func TestContactsShow_UnknownIDIsNotFound(t *testing.T) {
	isolate(t)
	data := writeDataset(t, scenarioDataset)
	_, stderr, err := runCLI(t, []string{"--data", data, "contacts", "show", "404"})
	var nf notFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected notFoundError, got %v", err)
	}
	if !strings.Contains(string(stderr), "contact not found: 404") {
		t.Fatalf("expected not-found message on stderr; got %q", stderr)
	}
}

func TestContactsCall_IssuesURIThroughLauncher(t *testing.T) {
	isolate(t)
	data := writeDataset(t, scenarioDataset)
	rec := &launch.Recorder{}

	stdout, stderr, err := runCLIWithApp(t, &App{launcher: rec}, []string{"--data", data, "contacts", "call", "2"})
	if err != nil {
		t.Fatalf("call failed: %v\n%s", err, stderr)
	}
	if got := rec.URIs(); !reflect.DeepEqual(got, []string{"tel:555-9999"}) {
		t.Fatalf("expected tel uri to be issued, got %v", got)
	}
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	d, _ := env["data"].(map[string]any)
	if d["uri"] != "tel:555-9999" || d["issued"] != true {
		t.Fatalf("unexpected output %v", d)
	}
}

func TestContactsEmail_DryRunDoesNotLaunch(t *testing.T) {
	isolate(t)
	data := writeDataset(t, scenarioDataset)
	rec := &launch.Recorder{}

	stdout, _, err := runCLIWithApp(t, &App{launcher: rec}, []string{"--data", data, "contacts", "email", "1", "--dry-run"})
	if err != nil {
		t.Fatalf("email failed: %v", err)
	}
	if got := rec.URIs(); len(got) != 0 {
		t.Fatalf("expected no launch on dry run, got %v", got)
	}
	if !strings.Contains(string(stdout), `"uri":"mailto:a@x.com"`) {
		t.Fatalf("expected mailto uri in output; got %s", stdout)
	}
}

func TestMalformedDatasetIsFatal(t *testing.T) {
	isolate(t)
	data := writeDataset(t, `[{"id": 1, "phone": "1", "email": "e"}]`)
	_, stderr, err := runCLI(t, []string{"--data", data, "contacts", "list"})
	var se *store.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if !strings.Contains(string(stderr), "name is missing") {
		t.Fatalf("expected schema message on stderr; got %q", stderr)
	}
}

func TestMissingDatasetIsFatal(t *testing.T) {
	isolate(t)
	_, _, err := runCLI(t, []string{"--data", filepath.Join(t.TempDir(), "nope.json"), "dataset", "check"})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestDatasetImportUseAndCheck(t *testing.T) {
	isolate(t)
	src := writeDataset(t, scenarioDataset)
	dst := filepath.Join(t.TempDir(), "contacts.sqlite")

	env := mustEnv(t, "dataset", "import", src, dst)
	d, _ := env["data"].(map[string]any)
	if c, _ := d["count"].(float64); c != 2 {
		t.Fatalf("expected 2 imported contacts, got %v", d["count"])
	}

	mustEnv(t, "dataset", "use", dst)
	env = mustEnv(t, "dataset", "check")
	d, _ = env["data"].(map[string]any)
	srcInfo, _ := d["source"].(map[string]any)
	if srcInfo["kind"] != "sqlite" || srcInfo["path"] != dst {
		t.Fatalf("expected config dataset to be the sqlite file, got %v", d["source"])
	}

	env = mustEnv(t, "contacts", "list", "--search", "bob")
	if got := namesOf(t, env["data"]); !reflect.DeepEqual(got, []string{"Bob Jones"}) {
		t.Fatalf("expected Bob from sqlite dataset, got %v", got)
	}
}

func TestCommandNames_IncludesSubcommandsAndAliases(t *testing.T) {
	names := CommandNames()
	for _, want := range []string{"contacts", "contact", "dataset", "help"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %q in %v", want, names)
		}
	}
}

func TestDocs_ListAndRaw(t *testing.T) {
	isolate(t)
	env := mustEnv(t, "docs")
	d, _ := env["data"].(map[string]any)
	topics, _ := d["topics"].([]any)
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %v", d["topics"])
	}

	stdout, _, err := runCLI(t, []string{"docs", "keys", "--raw"})
	if err != nil {
		t.Fatalf("docs keys: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Keys") {
		t.Fatalf("expected raw markdown; got:\n%s", stdout)
	}

	if _, _, err := runCLI(t, []string{"docs", "nope"}); err == nil {
		t.Fatalf("expected unknown topic to fail")
	}
}

func TestTableFormat_EveryCommandRendersFields(t *testing.T) {
	isolate(t)
	data := writeDataset(t, scenarioDataset)
	dst := filepath.Join(t.TempDir(), "contacts.sqlite")
	rec := &launch.Recorder{}

	cases := []struct {
		args []string
		want string
	}{
		{args: []string{"--data", data, "contacts", "call", "1"}, want: "tel:555-1234"},
		{args: []string{"--data", data, "contacts", "email", "2", "--dry-run"}, want: "mailto:b@x.com"},
		{args: []string{"--data", data, "dataset", "check"}, want: "json " + data},
		{args: []string{"dataset", "import", data, dst}, want: "sqlite " + dst},
		{args: []string{"dataset", "use", data}, want: "count"},
		{args: []string{"docs"}, want: "dataset, keys"},
		{args: []string{"docs", "keys"}, want: "markdown"},
	}
	for _, tc := range cases {
		args := append([]string{"--format", "table"}, tc.args...)
		stdout, stderr, err := runCLIWithApp(t, &App{launcher: rec}, args)
		if err != nil {
			t.Fatalf("directory %v: %v\nstderr:\n%s", args, err, stderr)
		}
		out := string(stdout)
		if !strings.Contains(out, "FIELD") || !strings.Contains(out, tc.want) {
			t.Fatalf("directory %v: expected field table containing %q; got:\n%s", args, tc.want, out)
		}
	}

	if got := rec.URIs(); !reflect.DeepEqual(got, []string{"tel:555-1234"}) {
		t.Fatalf("expected exactly one call to be issued, got %v", got)
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataPath != data {
		t.Fatalf("expected dataPath %q saved, got %q", data, cfg.DataPath)
	}
}

func TestUnknownFormat_FailsBeforeSideEffects(t *testing.T) {
	isolate(t)
	data := writeDataset(t, scenarioDataset)
	rec := &launch.Recorder{}

	_, stderr, err := runCLIWithApp(t, &App{launcher: rec}, []string{"--format", "xml", "--data", data, "contacts", "call", "1"})
	if err == nil {
		t.Fatalf("expected unknown format to fail")
	}
	if !strings.Contains(string(stderr), `unknown format: "xml"`) {
		t.Fatalf("expected format error on stderr; got %q", stderr)
	}
	if got := rec.URIs(); len(got) != 0 {
		t.Fatalf("expected no launch, got %v", got)
	}

	t.Setenv("DIRECTORY_FORMAT", "xml")
	if _, _, err := runCLI(t, []string{"dataset", "use", data}); err == nil {
		t.Fatalf("expected unknown env format to fail")
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataPath != "" {
		t.Fatalf("expected config untouched, got dataPath %q", cfg.DataPath)
	}
}
