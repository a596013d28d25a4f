package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/privault/privault/internal/config"
)

// flagCfg collects flag values into a partial config merged with
// environment variables and the optional JSON file by config.GetConfigWith.
var flagCfg = &config.Config{}

var rootCmd = &cobra.Command{
	Use:   "privault",
	Short: "Local-first encrypted personal vault",
	Long: `privault stores notes and files on this device, encrypted at rest.
Content is sealed through an encryption provider: a local one keyed from a
prompted passphrase, or a remote trust service holding the keys itself.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagCfg.Storage.DB.DSN, "database", "d", "", `database file path (or ":memory:")`)
	pf.StringVar(&flagCfg.Provider.Mode, "provider-mode", "", "encryption provider mode (local|remote)")
	pf.StringVar(&flagCfg.Provider.BaseURL, "provider-url", "", "trust service base URL")
	pf.DurationVar(&flagCfg.Provider.Timeout, "provider-timeout", 0, "remote provider call timeout (e.g. 15s)")
	pf.StringVarP(&flagCfg.JSONFilePath, "config", "c", "", "JSON config file path")

	rootCmd.AddCommand(tuiCmd, serveCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
