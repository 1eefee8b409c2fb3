package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"directory-cli/internal/directory"
	"directory-cli/internal/format"
	"directory-cli/internal/store"
	"directory-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	DataPath   string
	PrettyJSON bool
	Format     string

	// launcher overrides the OS URI opener (tests).
	launcher directory.Launcher
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "directory",
		Short:        "Searchable contact directory (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Browse the directory interactively
  directory --data contacts.json

  # Scriptable commands
  directory contacts list --search ali
  directory contacts show 1 --format table

  # Direct lookup (shortcut for: directory contacts show <id>)
  directory 1
`),
		Args: cobra.NoArgs,
		// Reject a bad --format before any command runs its side effect (launch, config write).
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return checkFormat(cmd, app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.DataPath, "data", envOr("DIRECTORY_DATA", ""), "Dataset path (.json, .sqlite or .db; default: config dataPath, then the bundled sample)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("DIRECTORY_FORMAT", "json"), "Output format (json|table)")

	cmd.AddCommand(newContactsCmd(app))
	cmd.AddCommand(newDatasetCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// CommandNames lists the top-level subcommands (used to detect bare contact ids in argv).
func CommandNames() []string {
	var out []string
	for _, c := range NewRootCmd().Commands() {
		out = append(out, c.Name())
		out = append(out, c.Aliases...)
	}
	return append(out, "help", "completion")
}

func runTUI(cmd *cobra.Command, app *App) error {
	cs, src, err := loadContacts(cmd.Context(), app)
	if err != nil {
		return writeErr(cmd, err)
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return writeErr(cmd, err)
	}
	return tui.Run(cs, tui.Options{Source: src, Launcher: app.launcher, Theme: cfg.Theme()})
}

// loadContacts loads the dataset once. Any failure is fatal for the command.
func loadContacts(ctx context.Context, app *App) (store.Contacts, store.Source, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cs, src, err := store.Load(ctx, app.DataPath)
	if err != nil {
		return store.Contacts{}, store.Source{}, fmt.Errorf("load dataset: %w", err)
	}
	return cs, src, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// envelope is the JSON output contract: {"data": ..., "meta": {...}}.
type envelope struct {
	Data any            `json:"data"`
	Meta map[string]any `json:"meta,omitempty"`

	// table is used instead of the envelope for --format table.
	table format.Tabular
}

func checkFormat(cmd *cobra.Command, app *App) error {
	switch strings.TrimSpace(app.Format) {
	case "", "json", "table":
		return nil
	default:
		return writeErr(cmd, fmt.Errorf("unknown format: %q (expected json or table)", app.Format))
	}
}

func writeOut(cmd *cobra.Command, app *App, env envelope) error {
	if strings.TrimSpace(app.Format) == "table" {
		t := env.table
		if t == nil {
			t = fieldsTableOf(env.Data)
		}
		if t != nil {
			return format.Write(cmd.OutOrStdout(), t, "table", app.PrettyJSON)
		}
	}
	return format.Write(cmd.OutOrStdout(), env, "json", app.PrettyJSON)
}

// fieldsTable renders a flat result object as FIELD/VALUE rows, keys sorted.
type fieldsTable map[string]any

func fieldsTableOf(v any) format.Tabular {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return fieldsTable(m)
}

func (t fieldsTable) Headers() []string { return []string{"FIELD", "VALUE"} }
func (t fieldsTable) Rows() [][]string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, cellString(t[k])})
	}
	return rows
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []string:
		return strings.Join(x, ", ")
	case store.Source:
		if x.Path == "" {
			return x.Kind
		}
		return x.Kind + " " + x.Path
	default:
		return fmt.Sprint(x)
	}
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
