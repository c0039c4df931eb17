package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tubevault/tubevault/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Setting", "Value"})
			t.AppendRows([]table.Row{
				{"download_thumbnails", cfg.DownloadThumbnails},
				{"fetch_comments", cfg.FetchComments},
				{"ytdlp_path", cfg.YtdlpPath},
			})
			t.Render()

			fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", config.Path())
			return nil
		},
	}

	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <true|false>",
		Short: "Change a configuration setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", args[1])
			}
			if err := config.Set(&cfg, args[0], value); err != nil {
				return err
			}
			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s = %t\n", args[0], value)
			return nil
		},
	}
}
