package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tubevault/tubevault/internal/usecase"
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Export archived artifacts to files",
	}

	cmd.AddCommand(newDumpThumbnailsCmd())

	return cmd
}

func newDumpThumbnailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "thumbnails [dir]",
		Short: "Write every stored thumbnail to a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "thumbnails"
			if len(args) == 1 {
				dir = args[0]
			}

			return withArchiver(func(ctx context.Context, archiver *usecase.Archiver) error {
				dumped, err := archiver.DumpThumbnails(ctx, dir)
				if err != nil {
					return err
				}
				if dumped == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No new thumbnails to dump.")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Dumped %d thumbnail(s) to %s.\n", dumped, dir)
				return nil
			})
		},
	}
}
