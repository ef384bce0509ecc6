package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-eas-suite/internal/config"
	"github.com/MKhiriev/go-eas-suite/internal/logger"
)

// cliEnv carries what every subcommand needs: the flag values bound on the
// root command, and the merged configuration and logger built from them.
type cliEnv struct {
	flags *config.StructuredConfig

	cfg    *config.StructuredConfig
	logger *logger.Logger
}

func (e *cliEnv) load(cmd *cobra.Command, role string) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags(), e.flags)
	if err != nil {
		return err
	}

	log, err := logger.NewConsoleLogger(role, os.Stderr).WithLevel(cfg.Suite.LogLevel)
	if err != nil {
		return err
	}
	log.Debug().
		Str("url", cfg.SUT.BaseURL).
		Str("device_id", cfg.Device.ID).
		Str("protocol_version", cfg.Device.ProtocolVersion).
		Msg("configuration loaded")

	e.cfg, e.logger = cfg, log
	return nil
}

// defaultURL fills --url for commands that never contact a server, so the
// configuration validates without one.
func defaultURL(cmd *cobra.Command, url string) {
	if !cmd.Flags().Changed("url") {
		_ = cmd.Flags().Set("url", url)
	}
}
