package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-eas-suite/internal/client"
	"github.com/MKhiriev/go-eas-suite/models"
)

func optionsCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the protocol versions and commands the server advertises",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.load(cmd, "client"); err != nil {
				return err
			}
			c, err := client.NewActiveSyncClient(env.cfg, env.logger)
			if err != nil {
				return err
			}

			opts, err := c.Options(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status:   %d\n", opts.StatusCode)
			fmt.Fprintf(out, "Versions: %s\n", strings.Join(opts.Versions, ", "))
			fmt.Fprintf(out, "Commands: %s\n", strings.Join(opts.Commands, ", "))
			return nil
		},
	}
}

func folderSyncCmd(env *cliEnv) *cobra.Command {
	var (
		syncKey   string
		provision bool
	)

	cmd := &cobra.Command{
		Use:   "foldersync",
		Short: "Print the folder hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.load(cmd, "client"); err != nil {
				return err
			}
			c, err := client.NewActiveSyncClient(env.cfg, env.logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if provision {
				if _, err = c.ProvisionDevice(ctx, nil); err != nil {
					return err
				}
			}
			resp, err := c.FolderSync(ctx, &models.FolderSyncRequest{SyncKey: syncKey})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status: %s  SyncKey: %s\n", resp.Status, resp.SyncKey)
			if resp.Changes == nil {
				return nil
			}
			for _, f := range resp.Changes.Add {
				fmt.Fprintf(out, "%-8s %-8s %-4s %s\n", f.ServerID, f.ParentID, f.Type, f.DisplayName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&syncKey, "sync-key", "0", "FolderSync SyncKey")
	cmd.Flags().BoolVar(&provision, "provision", true, "Provision the device first")

	return cmd
}

func autodiscoverCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "autodiscover <email>",
		Short: "Look up the ActiveSync URL of a mailbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.load(cmd, "client"); err != nil {
				return err
			}
			c, err := client.NewActiveSyncClient(env.cfg, env.logger)
			if err != nil {
				return err
			}

			resp, err := c.Autodiscover(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if resp.Error != nil {
				return fmt.Errorf("autodiscover error %s: %s", resp.Error.Status, resp.Error.Message)
			}
			if resp.Redirect != "" {
				fmt.Fprintf(out, "Redirect: %s\n", resp.Redirect)
				return nil
			}
			fmt.Fprintf(out, "User: %s <%s>\n", resp.DisplayName, resp.EMail)
			fmt.Fprintf(out, "URL:  %s\n", resp.MobileSyncURL())
			return nil
		},
	}
}
