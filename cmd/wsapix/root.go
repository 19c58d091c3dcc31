package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Abraxas-365/wsapix/appx"
	"github.com/Abraxas-365/wsapix/logx"
)

// Version is set at build time
var Version = "dev"

var (
	configFile string
	envFile    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "wsapix",
	Short:         "WSAPI WhatsApp gateway actions and webhook trigger",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with WSAPIX_ variables")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides the configuration")
}

// loadApp loads the settings and wires the application
func loadApp(ctx context.Context) (*appx.App, error) {
	settings, err := appx.Load(appx.LoadOptions{ConfigFile: configFile, EnvFile: envFile})
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		settings.Log.Level = logLevel
	}
	app, err := appx.New(ctx, settings)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		logx.Configure(logLevel, "")
	}
	return app, nil
}
