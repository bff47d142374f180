// SPDX-License-Identifier: MIT

// Command menutree renders, converts and filters menu documents. Results go
// to stdout; input files are never modified.
//
//	menutree render menu.yaml --style vertical
//	menutree convert menu.yaml --to toml
//	menutree remove menu.json --data "Product A" --prune
//	menutree find menu.toml --data "Service A"
package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"

	"github.com/katalvlaran/menutree/internal/cli"
)

func main() {
	root := cli.NewRootCommand(afero.NewOsFs())
	if err := root.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
