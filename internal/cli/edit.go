// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/menutree/menu"
)

func (a *app) removeCommand() *cobra.Command {
	var (
		data  []string
		to    string
		prune bool
		tree  bool
	)

	cmd := &cobra.Command{
		Use:     "remove <file>",
		Short:   "Print a menu document without the items whose data matches",
		Example: `menutree remove menu.json --data "Product A" --data Home --prune`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			n := m.RemoveItemCount(func(s string) bool { return lo.Contains(data, s) })
			if n == 0 {
				return fmt.Errorf("%w: %s", ErrNoMatch, strings.Join(data, ", "))
			}
			pruned := 0
			if prune {
				pruned = m.Prune()
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "removed %d item(s), pruned %d menu(s)\n", n, pruned)

			if tree {
				return m.Render(cmd.OutOrStdout())
			}

			return emit(cmd, m, to, args[0])
		},
	}
	cmd.Flags().StringArrayVarP(&data, "data", "d", nil, "item data to remove (repeatable)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "output format; defaults to the input's")
	cmd.Flags().BoolVar(&prune, "prune", false, "drop submenus left empty")
	cmd.Flags().BoolVar(&tree, "tree", false, "print the result as a tree instead of a document")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func (a *app) findCommand() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:     "find <file>",
		Short:   "Print the path of the first item whose data matches",
		Example: `menutree find menu.toml --data "Service A"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			it := m.FindItem(func(s string) bool { return s == data })
			if it == nil {
				return fmt.Errorf("%w: %s", ErrNoMatch, data)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(pathOf(it), " / "))

			return err
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "item data to look for")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

// pathOf lists the routes from the root down to it, with the item's own label last.
func pathOf(it *menu.Item[string]) []string {
	p := it.Path()
	p[len(p)-1] = it.String()

	return p
}
