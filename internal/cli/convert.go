// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) convertCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:     "convert <file>",
		Short:   "Print a menu document in another format",
		Example: `menutree convert menu.yaml --to toml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			return emit(cmd, m, to, args[0])
		},
	}
	cmd.Flags().StringVarP(&to, "to", "t", "json", "output format: json, yaml or toml")

	return cmd
}
