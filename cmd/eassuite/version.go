package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-eas-suite/internal/tui"
	"github.com/MKhiriev/go-eas-suite/models"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderBuildInfo(info))
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version")

	return cmd
}
