package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tubevault/tubevault/internal/usecase"
)

func newUnarchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unarchive",
		Short: "Remove archived videos or playlists",
	}

	cmd.AddCommand(newUnarchiveVideoCmd())
	cmd.AddCommand(newUnarchivePlaylistCmd())

	return cmd
}

func newUnarchiveVideoCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "video <id>",
		Short: "Remove a video and its comments, tags, and memberships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArchiver(func(ctx context.Context, archiver *usecase.Archiver) error {
				if !confirm(cmd, fmt.Sprintf("Remove video %s from the archive?", args[0]), assumeYes) {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}

				deleted, err := archiver.UnarchiveVideo(ctx, args[0])
				if err != nil {
					return err
				}
				if !deleted {
					fmt.Fprintf(cmd.OutOrStdout(), "Video %s is not archived.\n", args[0])
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed video %s.\n", args[0])
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "remove without asking")

	return cmd
}

func newUnarchivePlaylistCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "playlist <id|*>",
		Short: "Remove a playlist snapshot, or all of them with *",
		Long:  "Remove a playlist and its membership rows. Archived videos are kept. Pass * to remove every stored playlist.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArchiver(func(ctx context.Context, archiver *usecase.Archiver) error {
				prompt := fmt.Sprintf("Remove playlist %s from the archive?", args[0])
				if args[0] == "*" {
					prompt = "Remove ALL playlists from the archive?"
				}
				if !confirm(cmd, prompt, assumeYes) {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}

				removed, err := archiver.UnarchivePlaylist(ctx, args[0])
				if err != nil {
					return err
				}
				if removed == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to remove.")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d playlist(s).\n", removed)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "remove without asking")

	return cmd
}
