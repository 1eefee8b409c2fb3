package cli

import (
	"fmt"

	"directory-cli/internal/directory"
	"directory-cli/internal/launch"
	"directory-cli/internal/model"

	"github.com/spf13/cobra"
)

type contactsTable []model.Contact

func (t contactsTable) Headers() []string { return []string{"ID", "NAME", "PHONE", "EMAIL"} }
func (t contactsTable) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, c := range t {
		rows = append(rows, []string{c.ID, c.Name, c.Phone, c.Email})
	}
	return rows
}

type detailTable directory.DetailView

func (t detailTable) Headers() []string { return []string{"FIELD", "VALUE"} }
func (t detailTable) Rows() [][]string {
	return [][]string{
		{"id", t.ID},
		{"name", t.Name},
		{"greeting", t.Greeting},
		{"phone", t.Phone},
		{"email", t.Email},
		{"avatar", t.AvatarURL},
		{"call", t.CallURI},
		{"mail", t.EmailURI},
	}
}

func newContactsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		Aliases: []string{"contact", "c"},
		Short:   "Query the contact directory",
	}
	cmd.AddCommand(newContactsListCmd(app))
	cmd.AddCommand(newContactsShowCmd(app))
	cmd.AddCommand(newContactsActionCmd(app, "call", "Dial a contact (opens a tel: URI)", (*directory.Controller).Call))
	cmd.AddCommand(newContactsActionCmd(app, "email", "Write to a contact (opens a mailto: URI)", (*directory.Controller).Email))
	return cmd
}

func newContactsListCmd(app *App) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts matching a search (name ignoring case, or phone substring)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, src, err := loadContacts(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctrl := directory.New(cs)
			ctrl.SetSearchText(search)
			visible := ctrl.VisibleSubset()
			return writeOut(cmd, app, envelope{
				Data: visible,
				Meta: map[string]any{
					"search": search,
					"count":  len(visible),
					"total":  cs.Len(),
					"source": src,
				},
				table: contactsTable(visible),
			})
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Search text (empty lists everything)")
	return cmd
}

func newContactsShowCmd(app *App) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show <contact-id>",
		Short: "Show a contact's detail view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := selectedController(cmd, app, args[0], nil)
			if err != nil {
				return writeErr(cmd, err)
			}
			d := ctrl.Detail()
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), d.Markdown())
				return err
			}
			return writeOut(cmd, app, envelope{Data: d, table: detailTable(d)})
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the detail card as markdown (no JSON envelope)")
	return cmd
}

func newContactsActionCmd(app *App, name, short string, action func(*directory.Controller) string) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   name + " <contact-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var l directory.Launcher = app.launcher
			if dryRun {
				l = &launch.Recorder{}
			} else if l == nil {
				l = launch.OS{}
			}
			ctrl, err := selectedController(cmd, app, args[0], l)
			if err != nil {
				return writeErr(cmd, err)
			}
			uri := action(ctrl)
			return writeOut(cmd, app, envelope{Data: map[string]any{
				"id":     args[0],
				"uri":    uri,
				"issued": !dryRun,
			}})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the URI without opening it")
	return cmd
}

// selectedController loads the dataset and selects id, as a tap on the list entry would.
func selectedController(cmd *cobra.Command, app *App, id string, l directory.Launcher) (*directory.Controller, error) {
	cs, _, err := loadContacts(cmd.Context(), app)
	if err != nil {
		return nil, err
	}
	c, ok := cs.ByID(id)
	if !ok {
		return nil, errNotFound("contact", id)
	}
	var opts []directory.Option
	if l != nil {
		opts = append(opts, directory.WithLauncher(l))
	}
	ctrl := directory.New(cs, opts...)
	ctrl.SelectContact(c)
	return ctrl, nil
}
