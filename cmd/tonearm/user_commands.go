package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"tonearm/internal/catalog"
	"tonearm/internal/logging"
)

func newUserCommand(ctx *commandContext) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage catalog users",
	}

	userCmd.AddCommand(newUserAddCommand(ctx))
	userCmd.AddCommand(newUserListCommand(ctx))

	return userCmd
}

func newUserAddCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add USERNAME",
		Short: "Register a user",
		Long: "Register a user as a grant target. New users see no folders until " +
			"granted; only folders created after this point are granted automatically.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withStore(func(store *catalog.Store) error {
				if err := store.CreateUser(context.Background(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Registered user %s\n", args[0])
				return nil
			})
		},
	}
}

func newUserListCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users and their visible folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withStore(func(store *catalog.Store) error {
				names, err := store.Usernames(context.Background())
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(names))
				for _, name := range names {
					folders, err := store.FoldersForUser(context.Background(), name)
					if err != nil {
						return err
					}
					visible := make([]string, 0, len(folders))
					for _, f := range folders {
						visible = append(visible, strconv.FormatInt(f.ID, 10))
					}
					rows = append(rows, []string{name, strconv.Itoa(len(folders)), joinOrDash(visible)})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"USERNAME", "FOLDERS", "FOLDER IDS"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}

func newGrantCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "grant USERNAME [FOLDER_ID...]",
		Short: "Replace a user's visible folders",
		Long: "Replace the user's folder grants with exactly the given folder ids. " +
			"With no ids the user loses access to every folder.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			ids, err := parseFolderIDs(args[1:])
			if err != nil {
				return err
			}

			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}
			opCtx := logging.WithOperationID(context.Background())
			log := logging.WithContext(opCtx, logging.NewComponentLogger(logger, "grants"))

			return cmdCtx.withAdminLock(func() error {
				return cmdCtx.withStore(func(store *catalog.Store) error {
					if err := store.SetFoldersForUser(opCtx, username, ids); err != nil {
						return err
					}
					log.Info("replaced folder grants",
						slog.String(logging.FieldUsername, username),
						slog.Int("folders", len(ids)),
					)
					fmt.Fprintf(cmd.OutOrStdout(), "User %s now sees %d folder(s)\n", username, len(ids))
					return nil
				})
			})
		},
	}
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	out := values[0]
	for _, v := range values[1:] {
		out += ", " + v
	}
	return out
}
