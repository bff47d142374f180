// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/menutree/menu"
	"github.com/katalvlaran/menutree/treeview"
)

// Render styles accepted by --style.
const (
	StyleIndent     = "indent"
	StyleVertical   = "vertical"
	StyleHorizontal = "horizontal"
	StylePterm      = "pterm"
)

var styles = []string{StyleIndent, StyleVertical, StyleHorizontal, StylePterm}

func (a *app) renderCommand() *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:     "render <file>",
		Short:   "Print a menu document as a tree",
		Example: `menutree render menu.yaml --style vertical`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !lo.Contains(styles, style) {
				return fmt.Errorf("menutree: unknown style %q, want one of %s", style, strings.Join(styles, ", "))
			}

			m, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			return renderStyle(cmd, m, style)
		},
	}
	cmd.Flags().StringVarP(&style, "style", "s", StyleIndent, "one of "+strings.Join(styles, ", "))

	return cmd
}

func renderStyle(cmd *cobra.Command, m *menu.Menu[string], style string) error {
	out := cmd.OutOrStdout()

	switch style {
	case StyleVertical:
		_, err := fmt.Fprintln(out, treeview.Vertical[string](m))
		return err
	case StyleHorizontal:
		_, err := fmt.Fprintln(out, treeview.Horizontal[string](m))
		return err
	case StylePterm:
		s, err := pterm.DefaultTree.WithRoot(ptermNode[string](m)).Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, s)
		return err
	default:
		return m.Render(out)
	}
}

// ptermNode converts a menu subtree into pterm's tree model.
func ptermNode[T any](n menu.Node[T]) pterm.TreeNode {
	node := pterm.TreeNode{Text: treeview.Label(n)}
	if m, ok := n.(*menu.Menu[T]); ok {
		node.Children = lo.Map(m.Children(), func(c menu.Node[T], _ int) pterm.TreeNode {
			return ptermNode(c)
		})
	}

	return node
}
