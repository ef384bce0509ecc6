package main

import (
	"github.com/spf13/cobra"

	stub "github.com/MKhiriev/go-eas-suite/internal/handler/http"
	"github.com/MKhiriev/go-eas-suite/internal/server"
)

func stubCmd(env *cliEnv) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Serve a scripted ActiveSync server on the loopback interface",
		Long: `Serve a scripted ActiveSync server that answers Provision, FolderSync,
Sync, Settings and Ping with canned responses. The credentials are taken
from --user and --password; with none set any credentials are accepted.

Examples:
  eassuite stub --listen 127.0.0.1:8080 --user alice --password secret
  eassuite run -u http://127.0.0.1:8080 --user alice --password secret`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaultURL(cmd, "http://"+listen)
			if err := env.load(cmd, "stub"); err != nil {
				return err
			}

			h := stub.NewHandler(stub.DefaultScript(), stub.Settings{
				Username: env.cfg.SUT.User,
				Password: env.cfg.SUT.Password,
				Versions: env.cfg.SUT.SupportedVersions,
			}, env.logger)

			srv, err := server.NewHTTPServer(h.Init(), listen, env.logger)
			if err != nil {
				return err
			}
			return server.RunUntilSignal(cmd.Context(), srv, env.logger)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:8080", "Listen address")

	return cmd
}
