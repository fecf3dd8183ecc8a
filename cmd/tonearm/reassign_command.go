package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"tonearm/internal/catalog"
	"tonearm/internal/config"
	"tonearm/internal/logging"
)

func newReassignCommand(cmdCtx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "reassign FROM_PATH TO_PATH",
		Short: "Move catalog ownership between two nested folders",
		Long: "Reassign the catalog subtree shared by two registered folders whose " +
			"absolute paths are nested. When TO is the deeper folder its subtree is " +
			"promoted out of FROM; when TO is the shallower folder FROM's whole " +
			"catalog is folded back under it. Unrelated folder pairs are rejected.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromPath, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			toPath, err := config.ExpandPath(args[1])
			if err != nil {
				return err
			}

			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}
			opCtx := logging.WithOperationID(context.Background())
			log := logging.WithContext(opCtx, logging.NewComponentLogger(logger, "reassign"))

			run := func() error {
				return cmdCtx.withStore(func(store *catalog.Store) error {
					from, err := store.FolderByPath(opCtx, fromPath)
					if err != nil {
						return err
					}
					if from == nil {
						return fmt.Errorf("no folder registered at %s", fromPath)
					}
					to, err := store.FolderByPath(opCtx, toPath)
					if err != nil {
						return err
					}
					if to == nil {
						return fmt.Errorf("no folder registered at %s", toPath)
					}

					if dryRun {
						entries, err := store.EntriesInFolder(opCtx, from.ID)
						if err != nil {
							return err
						}
						preview, err := catalog.PreviewReassign(*from, *to, entries)
						if err != nil {
							return err
						}
						out := cmd.OutOrStdout()
						fmt.Fprintf(out, "%d entr(ies) would move from folder %d to folder %d:\n",
							len(preview), from.ID, to.ID)
						fmt.Fprintln(out, renderEntryTable(preview))
						return nil
					}

					if err := store.WithTx(opCtx, func(tx *sql.Tx) error {
						return store.Reassign(opCtx, tx, *from, *to)
					}); err != nil {
						return err
					}
					log.Info("reassigned catalog subtree",
						slog.Int64("from_folder_id", from.ID),
						slog.Int64("to_folder_id", to.ID),
					)
					fmt.Fprintf(cmd.OutOrStdout(), "Reassigned catalog entries from %s to %s\n", fromPath, toPath)
					return nil
				})
			}

			if dryRun {
				return run()
			}
			return cmdCtx.withAdminLock(run)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the rewritten entries without applying them")
	return cmd
}
