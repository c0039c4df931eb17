package main

import (
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:     "tubevault",
	Short:   "tubevault - an archiver for YouTube video metadata",
	Long:    "tubevault archives video metadata, thumbnails, comments, and ratings into a local database, with playlist and watch-history batch ingestion.",
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newArchiveCmd())
	rootCmd.AddCommand(newUnarchiveCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newMCPCmd())
}
