package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test the configured credentials against the gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.Client.TestCredentials(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s instance %s at %s\n",
			color.GreenString("credentials ok:"), app.Client.InstanceID(), app.Client.BaseURL())
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "wsapix", Version)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd, versionCmd)
}
