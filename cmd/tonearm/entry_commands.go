package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tonearm/internal/catalog"
)

func newEntryCommand(ctx *commandContext) *cobra.Command {
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Inspect and seed catalog entries",
	}

	entryCmd.AddCommand(newEntryListCommand(ctx))
	entryCmd.AddCommand(newEntryAddCommand(ctx))

	return entryCmd
}

func newEntryListCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list FOLDER_ID",
		Short: "List the catalog entries owned by a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folderID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid folder id %q", args[0])
			}
			return cmdCtx.withStore(func(store *catalog.Store) error {
				entries, err := store.EntriesInFolder(context.Background(), folderID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderEntryTable(entries))
				return nil
			})
		},
	}
}

func newEntryAddCommand(cmdCtx *commandContext) *cobra.Command {
	var titleFlag string
	var typeFlag string
	var coverFlag string

	cmd := &cobra.Command{
		Use:   "add FOLDER_ID PATH",
		Short: "Seed a catalog entry",
		Long: "Insert a catalog entry at a folder-relative path. The parent path is " +
			"derived from the path itself. Intended for seeding and diagnostics; " +
			"regular catalog population is the scanner's job.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			folderID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid folder id %q", args[0])
			}

			mediaType, ok := catalog.ParseMediaType(typeFlag)
			if !ok {
				return fmt.Errorf("unknown media type %q", typeFlag)
			}

			path := strings.Trim(args[1], "/")
			title := strings.TrimSpace(titleFlag)
			if title == "" {
				title = deriveFolderName(path)
			}

			entry := catalog.Entry{
				FolderID: folderID,
				Path:     path,
				Title:    title,
				Type:     mediaType,
			}
			if cover := strings.Trim(coverFlag, "/"); cover != "" {
				entry.CoverArtPath = &cover
			}
			if err := entry.Validate(); err != nil {
				return fmt.Errorf("invalid entry: %w", err)
			}

			return cmdCtx.withStore(func(store *catalog.Store) error {
				folder, err := store.FolderByID(context.Background(), folderID)
				if err != nil {
					return err
				}
				if folder == nil {
					return fmt.Errorf("folder %d not found", folderID)
				}
				if err := store.CreateEntry(context.Background(), &entry); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added entry %d at %s\n", entry.ID, entry.Path)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&titleFlag, "title", "", "Entry title (defaults from the last path segment)")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "music", "Media type: music, podcast, audiobook, video, directory")
	cmd.Flags().StringVar(&coverFlag, "cover", "", "Folder-relative cover art path")
	return cmd
}

func renderEntryTable(entries []catalog.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		path := e.Path
		if path == "" {
			path = "(root)"
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			strconv.FormatInt(e.FolderID, 10),
			path,
			orDash(e.ParentPath),
			orDash(e.CoverArtPath),
			e.Title,
			string(e.Type),
		})
	}
	return renderTable(
		[]string{"ID", "FOLDER", "PATH", "PARENT", "COVER", "TITLE", "TYPE"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
	)
}
