package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-eas-suite/internal/client"
	"github.com/MKhiriev/go-eas-suite/internal/suite"
	"github.com/MKhiriev/go-eas-suite/internal/tui"
)

func runCmd(env *cliEnv) *cobra.Command {
	var (
		scenarios []string
		browse    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the smoke scenarios against the server",
		Long: `Run the smoke scenarios in order and record one verdict per requirement.

Scenarios: options, provision, foldersync, sync-inbox.

Examples:
  eassuite run -u https://mail.example.com --user alice --password secret
  eassuite run --scenario options --scenario foldersync
  eassuite run -d captures.db --run-label nightly --browse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.load(cmd, "client"); err != nil {
				return err
			}
			selected, err := suite.Select(scenarios)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			app, err := client.NewApp(ctx, env.cfg, selected, cmd.OutOrStdout(), env.logger)
			if err != nil {
				return err
			}
			defer app.Close()

			runErr := app.Run(ctx)
			if browse {
				if err = tui.New(app.Captures(), env.logger).Browse(ctx, app.RunID()); err != nil {
					return err
				}
			}
			return runErr
		},
	}

	cmd.Flags().StringSliceVar(&scenarios, "scenario", nil, "Scenario to run (repeatable, default all)")
	cmd.Flags().BoolVar(&browse, "browse", false, "Open the capture browser when the run is done")

	return cmd
}
