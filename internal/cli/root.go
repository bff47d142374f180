// SPDX-License-Identifier: MIT

// Package cli holds the cobra commands of the menutree binary. Commands read
// documents through an afero.Fs so they run against memory in tests, and write
// results to the command's output only.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/menutree/menu"
	"github.com/katalvlaran/menutree/menufile"
)

// ErrNoMatch is returned by find and remove when no item carries the requested data.
var ErrNoMatch = errors.New("menutree: no matching item")

type app struct {
	fs      afero.Fs
	verbose bool
	ascii   bool
}

// NewRootCommand builds the menutree command tree over fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	root := &cobra.Command{
		Use:           "menutree",
		Short:         "Render, convert and edit menu documents",
		Long:          `Render, convert and edit menu trees stored as JSON, YAML or TOML documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log tree events to stderr")
	root.PersistentFlags().BoolVar(&a.ascii, "ascii", false, "draw connectors with ASCII characters")

	root.AddCommand(
		a.renderCommand(),
		a.convertCommand(),
		a.removeCommand(),
		a.findCommand(),
	)

	return root
}

func (a *app) options(stderr io.Writer) []menu.Option {
	var opts []menu.Option
	if a.ascii {
		opts = append(opts, menu.WithGlyphs(menu.ASCIIGlyphs))
	}
	if a.verbose {
		h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, menu.WithLogger(slog.New(h)))
	}

	return opts
}

// load reads the document at path, picking the format from its extension.
func (a *app) load(cmd *cobra.Command, path string) (*menu.Menu[string], error) {
	f, err := menufile.FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	r, err := a.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("menutree: open %s: %w", path, err)
	}
	defer r.Close()

	m, err := menufile.Decode[string](r, f, a.options(cmd.ErrOrStderr())...)
	if err != nil {
		return nil, fmt.Errorf("menutree: %s: %w", path, err)
	}

	return m, nil
}

// emit writes m to the command's output as a document in format name, or in
// the format of srcPath when name is empty.
func emit(cmd *cobra.Command, m *menu.Menu[string], name, srcPath string) error {
	f, err := menufile.FormatFromPath(srcPath)
	if name != "" {
		f, err = menufile.ParseFormat(name)
	}
	if err != nil {
		return err
	}

	return menufile.Encode(cmd.OutOrStdout(), m, f)
}
