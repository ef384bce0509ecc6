package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-eas-suite/internal/store"
	"github.com/MKhiriev/go-eas-suite/internal/tui"
)

var errNoCaptureDB = errors.New("report needs a capture database (--dsn)")

func reportCmd(env *cliEnv) *cobra.Command {
	var (
		runID  string
		browse bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the captures of a stored run",
		Long: `Show the captures a previous run stored in the capture database.

Examples:
  eassuite report -d captures.db --run-id 6f1c...
  eassuite report -d postgres://suite@db/captures --run-id 6f1c... --browse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaultURL(cmd, "http://localhost")
			if err := env.load(cmd, "report"); err != nil {
				return err
			}
			if env.cfg.Storage.DB.DSN == "" {
				return errNoCaptureDB
			}

			ctx := cmd.Context()
			storages, err := store.NewStorages(ctx, env.cfg.Storage.DB, env.logger)
			if err != nil {
				return err
			}
			defer storages.Close()

			if browse {
				return tui.New(storages.Captures, env.logger).Browse(ctx, runID)
			}

			captures, err := storages.Captures.ListByRun(ctx, runID)
			if err != nil {
				return err
			}
			summary, err := storages.Captures.Summarize(ctx, runID)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), tui.RenderReport(summary, captures))
			return err
		},
	}

	cmd.Flags().StringVar(&runID, "run-id", "", "Run id printed by eassuite run")
	cmd.Flags().BoolVar(&browse, "browse", false, "Open the interactive capture browser")
	_ = cmd.MarkFlagRequired("run-id")

	return cmd
}
