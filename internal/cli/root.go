// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hyperdrive/internal/app"
	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/MKhiriev/hyperdrive/models"
	"github.com/spf13/cobra"
)

// RunFunc starts a server with the given options and blocks until it stops.
type RunFunc func(ctx context.Context, opts app.Options) error

// Deps are the collaborators of the root command.
type Deps struct {
	BuildInfo models.AppBuildInfo
	// Run defaults to [RunServer].
	Run RunFunc
}

type rootFlags struct {
	init     string
	start    bool
	info     string
	key      bool
	config   string
	database string
}

// NewRootCommand builds the hyperdrive command. Exactly one action runs per
// invocation: info, init, key, start, or help when nothing was asked for.
func NewRootCommand(deps Deps) *cobra.Command {
	if deps.Run == nil {
		deps.Run = RunServer
	}

	var flags rootFlags
	defs := config.DefaultDefinitions()

	cmd := &cobra.Command{
		Use:           "hyperdrive [options]",
		Short:         "Configure and start a Parse server",
		Version:       fmt.Sprintf("%s [%s]", deps.BuildInfo.BuildVersion(), deps.BuildInfo.APIServerVersion()),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			switch {
			case flags.info != "":
				return printInfo(out, defs, flags.info)
			case flags.init != "":
				return initProject(out, defs, flags.init)
			case flags.key:
				printKey(out)
				return nil
			case flags.start || flags.config != "" || flags.database != "":
				return deps.Run(cmd.Context(), app.Options{
					ConfigFile: flags.config,
					Database:   flags.database,
					BuildInfo:  deps.BuildInfo,
				})
			default:
				return cmd.Help()
			}
		},
	}

	cmd.SetVersionTemplate("Hyperdrive: {{.Version}}\n")

	f := cmd.Flags()
	f.BoolP("version", "v", false, "print the version")
	f.StringVarP(&flags.init, "init", "i", "", "initialize a new Hyperdrive project")
	f.BoolVarP(&flags.start, "start", "s", false, "start the server with default options")
	f.StringVar(&flags.info, "info", "", "get info on a configuration option")
	f.BoolVarP(&flags.key, "key", "k", false, "generate a random secure key to use with the server")
	f.StringVarP(&flags.config, "config", "c", "", "start a Hyperdrive instance with the configuration file")
	f.StringVarP(&flags.database, "database", "d", "", "the database to use (ex. mongodb://localhost:27017/parse)")

	setHelp(cmd, defs)

	return cmd
}

// RunServer creates a server from opts and starts it.
func RunServer(ctx context.Context, opts app.Options) error {
	h, err := app.New(opts)
	if err != nil {
		return err
	}
	return h.Start(ctx)
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context, deps Deps) int {
	cmd := NewRootCommand(deps)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(err.Error()))
		return 1
	}
	return 0
}
