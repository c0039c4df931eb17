package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tubevault/tubevault/internal/media"
	"github.com/tubevault/tubevault/internal/takeout"
	"github.com/tubevault/tubevault/internal/usecase"
)

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Archive videos, playlists, or watch history",
	}

	cmd.AddCommand(newArchiveVideoCmd())
	cmd.AddCommand(newArchivePlaylistCmd())
	cmd.AddCommand(newArchiveHistoryCmd())

	return cmd
}

func newArchiveVideoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "video <id>...",
		Short: "Archive metadata for one or more videos",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArchiver(func(ctx context.Context, archiver *usecase.Archiver) error {
				for _, id := range args {
					status, err := archiver.ArchiveVideo(ctx, id)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", id, status)
				}
				return nil
			})
		},
	}
}

func newArchivePlaylistCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "playlist <id|export.csv>",
		Short: "Archive a playlist and all of its videos",
		Long:  "Archive a playlist given its id or a Google Takeout CSV export. An existing snapshot of the same playlist is replaced after confirmation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArchiver(func(ctx context.Context, archiver *usecase.Archiver) error {
				var (
					playlist media.Playlist
					err      error
				)
				if strings.HasSuffix(args[0], ".csv") {
					playlist, err = loadPlaylistExport(args[0])
				} else {
					playlist, err = archiver.ResolvePlaylist(ctx, args[0])
				}
				if err != nil {
					return err
				}

				exists, err := archiver.PlaylistExists(ctx, playlist.ID)
				if err != nil {
					return err
				}
				if exists && !confirm(cmd, fmt.Sprintf("Playlist %s is already archived. Overwrite it?", playlist.ID), assumeYes) {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}

				report, err := archiver.ArchivePlaylist(ctx, playlist)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Archived playlist %q: %d archived, %d failed, %d skipped (of %d)\n",
					playlist.Title, report.Archived, report.Failed, report.Skipped, report.Total)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "overwrite an existing playlist without asking")

	return cmd
}

func newArchiveHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <export.json>",
		Short: "Archive every video in a watch-history export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArchiver(func(ctx context.Context, archiver *usecase.Archiver) error {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open history export: %w", err)
				}
				defer file.Close()

				export, err := takeout.ParseHistoryJSON(file)
				if err != nil {
					return err
				}

				report, err := archiver.ArchiveHistory(ctx, export)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Archived history: %d archived, %d failed, %d skipped (of %d), %d unavailable\n",
					report.Archived, report.Failed, report.Skipped, report.Total, report.Unavailable)
				return nil
			})
		},
	}
}

func loadPlaylistExport(path string) (media.Playlist, error) {
	file, err := os.Open(path)
	if err != nil {
		return media.Playlist{}, fmt.Errorf("failed to open playlist export: %w", err)
	}
	defer file.Close()

	return takeout.ParsePlaylistCSV(file)
}
