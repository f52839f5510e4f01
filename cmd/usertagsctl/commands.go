// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/models"
)

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "usertagsctl",
		Short:        "Administer user tags",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "database DSN (overrides STORAGE_DB_DSN)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(migrateCmd(opts))
	rootCmd.AddCommand(registerCmd(opts))
	rootCmd.AddCommand(userCmd(opts))
	rootCmd.AddCommand(termCmd(opts))
	rootCmd.AddCommand(assignCmd(opts))

	return rootCmd
}

// withEnv opens the database for the duration of run.
func withEnv(opts *options, run func(cmd *cobra.Command, args []string, e *env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), opts, newLogger(opts, cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		defer e.Close()

		return run(cmd, args, e)
	}
}

func migrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			db, err := store.NewConnectDB(cmd.Context(), cfg.Storage.DB, newLogger(opts, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer db.Close()

			if err = db.Migrate(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied (%s)\n", db.Dialect())
			return nil
		},
	}
}

func registerCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Register the user tag taxonomy and grant its capabilities",
		Args:  cobra.NoArgs,
		RunE: withEnv(opts, func(cmd *cobra.Command, _ []string, e *env) error {
			taxonomy, err := e.services.Registrar.Register(cmd.Context())
			if err != nil {
				return err
			}

			caps := make([]string, 0, 4)
			for _, c := range taxonomy.Capabilities.All() {
				caps = append(caps, string(c))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s for %s: %s\n",
				taxonomy.Name, models.RoleAdministrator, strings.Join(caps, ", "))
			return nil
		}),
	}
}

func userCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(userAddCmd(opts))
	return cmd
}

func userAddCmd(opts *options) *cobra.Command {
	var user models.User

	cmd := &cobra.Command{
		Use:   "add <login>",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(opts, func(cmd *cobra.Command, args []string, e *env) error {
			user.Login = args[0]

			created, err := e.services.UserService.CreateUser(cmd.Context(), user)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %d %s (%s)\n", created.UserID, created.Login, created.Role)
			return nil
		}),
	}

	cmd.Flags().StringVar(&user.Password, "password", "", "password")
	cmd.Flags().StringVar(&user.Role, "role", models.RoleAdministrator, "role")
	cmd.Flags().StringVar(&user.DisplayName, "display-name", "", "display name")
	cmd.Flags().StringVar(&user.Email, "email", "", "email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func termCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Manage user tags",
	}
	cmd.AddCommand(termAddCmd(opts), termListCmd(opts))
	return cmd
}

func termAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a user tag",
		Args:  cobra.MinimumNArgs(1),
		RunE: withEnv(opts, func(cmd *cobra.Command, args []string, e *env) error {
			term, err := e.services.TermService.CreateTerm(cmd.Context(), systemActor(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created term %d %s (%s)\n", term.TermID, term.Name, term.Slug)
			return nil
		}),
	}
}

func termListCmd(opts *options) *cobra.Command {
	var req models.SearchRequest

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List user tags",
		Args:  cobra.NoArgs,
		RunE: withEnv(opts, func(cmd *cobra.Command, _ []string, e *env) error {
			page, err := e.services.TermService.ListTerms(cmd.Context(), systemActor(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, term := range page.Terms {
				fmt.Fprintf(out, "%d\t%s\t%s\n", term.TermID, term.Name, term.Slug)
			}
			if page.More {
				fmt.Fprintf(out, "... %d total, next page: --page %d\n", page.Total, page.Page+1)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&req.Search, "search", "", "name substring")
	cmd.Flags().IntVar(&req.Page, "page", 1, "page")

	return cmd
}

func assignCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <user_id> <term_id>...",
		Short: "Add user tags to a user",
		Args:  cobra.MinimumNArgs(2),
		RunE: withEnv(opts, func(cmd *cobra.Command, args []string, e *env) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			userID, termIDs := ids[0], ids[1:]

			if _, err = e.services.UserService.GetUser(ctx, userID); err != nil {
				return err
			}
			for _, termID := range termIDs {
				if _, err = e.services.TermService.GetTerm(ctx, systemActor(), termID); err != nil {
					return fmt.Errorf("term %d: %w", termID, err)
				}
			}

			assigned, err := e.services.TagRepository.GetAssignedTermIDs(ctx, userID)
			if err != nil {
				return err
			}
			for _, termID := range termIDs {
				if !slices.Contains(assigned, termID) {
					assigned = append(assigned, termID)
				}
			}

			if err = e.services.TagRepository.SetAssignedTerms(ctx, userID, assigned); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user %d tags: %s\n", userID, joinIDs(assigned))
			return nil
		}),
	}
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
