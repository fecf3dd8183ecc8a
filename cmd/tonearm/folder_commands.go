package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tonearm/internal/catalog"
	"tonearm/internal/config"
	"tonearm/internal/logging"
)

func newFolderCommand(ctx *commandContext) *cobra.Command {
	folderCmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage music folders",
	}

	folderCmd.AddCommand(newFolderListCommand(ctx))
	folderCmd.AddCommand(newFolderAddCommand(ctx))
	folderCmd.AddCommand(newFolderRemoveCommand(ctx))
	folderCmd.AddCommand(newFolderUpdateCommand(ctx))

	return folderCmd
}

func newFolderListCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered music folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withStore(func(store *catalog.Store) error {
				folders, err := store.Folders(context.Background())
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(folders))
				for _, f := range folders {
					rows = append(rows, []string{
						strconv.FormatInt(f.ID, 10),
						f.Path,
						f.Name,
						string(f.Type),
						yesNo(f.Enabled),
						formatTime(f.Changed),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "PATH", "NAME", "TYPE", "ENABLED", "CHANGED"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func newFolderAddCommand(cmdCtx *commandContext) *cobra.Command {
	var nameFlag string
	var typeFlag string
	var disabled bool

	cmd := &cobra.Command{
		Use:   "add PATH",
		Short: "Register a music folder and grant it to every existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			folderType, ok := catalog.ParseFolderType(typeFlag)
			if !ok {
				return fmt.Errorf("unknown folder type %q (expected media or podcast)", typeFlag)
			}

			name := strings.TrimSpace(nameFlag)
			if name == "" {
				name = deriveFolderName(path)
			}

			folder := catalog.Folder{
				Path:    path,
				Name:    name,
				Type:    folderType,
				Enabled: !disabled,
				Changed: time.Now().UTC(),
			}
			if err := folder.Validate(); err != nil {
				return fmt.Errorf("invalid folder: %w", err)
			}

			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}
			opCtx := logging.WithOperationID(context.Background())
			log := logging.WithContext(opCtx, logging.NewComponentLogger(logger, "folder"))

			return cmdCtx.withAdminLock(func() error {
				return cmdCtx.withStore(func(store *catalog.Store) error {
					existing, err := store.FolderByPath(opCtx, path)
					if err != nil {
						return err
					}
					if existing != nil {
						fmt.Fprintf(cmd.OutOrStdout(), "Folder %s is already registered (id %d)\n", path, existing.ID)
						return nil
					}
					if err := store.CreateFolder(opCtx, &folder); err != nil {
						return err
					}
					log.Info("registered music folder",
						slog.Int64(logging.FieldFolderID, folder.ID),
						slog.String("path", folder.Path),
					)
					fmt.Fprintf(cmd.OutOrStdout(), "Registered folder %s (id %d)\n", path, folder.ID)
					return nil
				})
			})
		},
	}

	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Display name (defaults to the last path segment)")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "media", "Folder type: media or podcast")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "Register the folder as disabled")
	return cmd
}

func newFolderRemoveCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a music folder",
		Long: "Delete a music folder by id. Catalog entries and user grants that still " +
			"reference the folder are not cleaned up; reassign or remove them first.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid folder id %q", args[0])
			}

			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}
			opCtx := logging.WithOperationID(context.Background())
			log := logging.WithContext(opCtx, logging.NewComponentLogger(logger, "folder"))

			return cmdCtx.withAdminLock(func() error {
				return cmdCtx.withStore(func(store *catalog.Store) error {
					if err := store.DeleteFolder(opCtx, id); err != nil {
						return err
					}
					log.Info("deleted music folder", slog.Int64(logging.FieldFolderID, id))
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted folder %d\n", id)
					return nil
				})
			})
		},
	}
}

func newFolderUpdateCommand(cmdCtx *commandContext) *cobra.Command {
	var nameFlag string
	var typeFlag string
	var pathFlag string
	var enabledFlag string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a music folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid folder id %q", args[0])
			}

			return cmdCtx.withAdminLock(func() error {
				return cmdCtx.withStore(func(store *catalog.Store) error {
					folder, err := store.FolderByID(context.Background(), id)
					if err != nil {
						return err
					}
					if folder == nil {
						return fmt.Errorf("folder %d not found", id)
					}

					if pathFlag != "" {
						expanded, err := config.ExpandPath(pathFlag)
						if err != nil {
							return err
						}
						folder.Path = expanded
					}
					if nameFlag != "" {
						folder.Name = nameFlag
					}
					if typeFlag != "" {
						folderType, ok := catalog.ParseFolderType(typeFlag)
						if !ok {
							return fmt.Errorf("unknown folder type %q", typeFlag)
						}
						folder.Type = folderType
					}
					if enabledFlag != "" {
						enabled, err := strconv.ParseBool(enabledFlag)
						if err != nil {
							return fmt.Errorf("invalid --enabled value %q", enabledFlag)
						}
						folder.Enabled = enabled
					}
					folder.Changed = time.Now().UTC()

					if err := folder.Validate(); err != nil {
						return fmt.Errorf("invalid folder: %w", err)
					}
					if err := store.UpdateFolder(context.Background(), *folder); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Updated folder %d\n", id)
					return nil
				})
			})
		},
	}

	cmd.Flags().StringVar(&pathFlag, "path", "", "New absolute path")
	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "New display name")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "New folder type: media or podcast")
	cmd.Flags().StringVar(&enabledFlag, "enabled", "", "Enable or disable the folder (true/false)")
	return cmd
}
