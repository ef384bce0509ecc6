package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-eas-suite/internal/config"
)

// Build information set with -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "eassuite",
		Short: "Exchange ActiveSync conformance client",
		Long: `eassuite drives an Exchange ActiveSync server over HTTP, checks its
responses and records one verdict per protocol requirement.

Configuration is read from environment variables, flags and an optional
JSON file (-c), in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	env := &cliEnv{flags: config.BindFlags(rootCmd.PersistentFlags())}

	rootCmd.AddCommand(
		runCmd(env),
		reportCmd(env),
		optionsCmd(env),
		folderSyncCmd(env),
		autodiscoverCmd(env),
		stubCmd(env),
		versionCmd(),
	)
	return rootCmd
}
