package cli

import (
	"fmt"
	"path/filepath"

	"directory-cli/internal/store"

	"github.com/spf13/cobra"
)

func newDatasetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Validate, convert and select contact datasets",
	}
	cmd.AddCommand(newDatasetCheckCmd(app))
	cmd.AddCommand(newDatasetImportCmd(app))
	cmd.AddCommand(newDatasetUseCmd(app))
	return cmd
}

func newDatasetCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the dataset and report how many contacts it holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, src, err := loadContacts(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, envelope{Data: map[string]any{
				"source": src,
				"count":  cs.Len(),
			}})
		},
	}
}

func newDatasetImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <src> <dst.sqlite>",
		Short: "Copy a dataset (JSON or SQLite) into a SQLite dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cs, src, err := store.LoadFile(ctx, args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("load dataset: %w", err))
			}
			dst := filepath.Clean(args[1])
			if err := store.ExportSQLite(ctx, dst, cs); err != nil {
				return writeErr(cmd, fmt.Errorf("write %s: %w", dst, err))
			}
			return writeOut(cmd, app, envelope{Data: map[string]any{
				"from":  src,
				"to":    store.Source{Path: dst, Kind: "sqlite"},
				"count": cs.Len(),
			}})
		},
	}
}

func newDatasetUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <path>",
		Short: "Make a dataset the default (validated before it is saved to config.json)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			cs, src, err := store.LoadFile(cmd.Context(), path)
			if err != nil {
				return writeErr(cmd, fmt.Errorf("load dataset: %w", err))
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg.DataPath = src.Path
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, envelope{Data: map[string]any{
				"source": src,
				"count":  cs.Len(),
			}})
		},
	}
}
