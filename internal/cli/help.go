// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"

	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/spf13/cobra"
)

const examples = `  $ hyperdrive -s
  $ hyperdrive -c config.yaml
  $ hyperdrive -d postgres://user@localhost:5432`

func setHelp(cmd *cobra.Command, defs config.Definitions) {
	cmd.Example = examples

	base := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		base(c, args)
		printEnvironment(c.OutOrStdout(), defs)
	})
}

// printEnvironment lists every option with its environment variable,
// sorted by option name.
func printEnvironment(out io.Writer, defs config.Definitions) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, accentStyle.Render("Configuration : Environment Variables:"))
	fmt.Fprintln(out)
	for _, name := range defs.SortedNames() {
		def, _ := defs.Lookup(name)
		fmt.Fprintf(out, "  %-22s: %s\n", name, def.Env)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, accentStyle.Render("Use `hyperdrive --info <configName>` for additional information"))
}

// printInfo describes one option: env var, default and help text.
func printInfo(out io.Writer, defs config.Definitions, name string) error {
	if canonical, ok := defs.Canonical(name); ok {
		name = canonical
	}
	def, err := defs.Lookup(name)
	if err != nil {
		return err
	}

	help := def.Help
	if help == "" {
		help = "No description."
	}

	fmt.Fprintf(out, "\n%s : %s\n", successStyle.Render(def.Name), def.Env)
	fmt.Fprintf(out, "\n   %s\n", successStyle.Render(help))
	fmt.Fprintf(out, "   default: %s\n\n", def.Default.Describe())
	return nil
}
