// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ask-me/internal/config"
	"github.com/MKhiriev/go-ask-me/internal/service"
	"github.com/MKhiriev/go-ask-me/internal/store"
)

func MigrateCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.Config.ValidateLocal(); err != nil {
				return err
			}

			db, err := store.NewConnect(cmd.Context(), config.DB{DSN: env.Config.DSN}, env.Logger)
			if err != nil {
				return fmt.Errorf("error opening database: %w", err)
			}
			defer db.Close()

			if err = db.Migrate(); err != nil {
				return fmt.Errorf("error applying migrations: %w", err)
			}

			printOK(cmd.OutOrStdout(), "migrations applied (%s)", db.Dialect())
			return nil
		},
	}
}

func ModerationCmd(env *Env) *cobra.Command {
	moderationCmd := &cobra.Command{
		Use:   "moderation",
		Short: "Show or change whether new questions need approval",
	}

	moderationCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the moderation flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			local, err := env.openLocal(cmd.Context())
			if err != nil {
				return err
			}
			defer local.storages.Close()

			if err = local.settings.Bootstrap(cmd.Context()); err != nil {
				return err
			}
			settings, err := local.settings.Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read settings: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "moderation: %s\n", onOff(settings.ModerationEnabled))
			return nil
		},
	})

	for _, state := range []struct {
		use     string
		enabled bool
	}{{"on", true}, {"off", false}} {
		moderationCmd.AddCommand(&cobra.Command{
			Use:   state.use,
			Short: "Turn moderation " + state.use,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				local, err := env.openLocal(cmd.Context())
				if err != nil {
					return err
				}
				defer local.storages.Close()

				if err = local.settings.SetModeration(cmd.Context(), state.enabled); err != nil {
					return fmt.Errorf("failed to change moderation: %w", err)
				}

				printOK(cmd.OutOrStdout(), "moderation turned %s", onOff(state.enabled))
				return nil
			},
		})
	}

	return moderationCmd
}

func AdminCmd(env *Env) *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the admin account",
	}

	setCredentialsCmd := &cobra.Command{
		Use:   "set-credentials",
		Short: "Replace the admin username and password without the current password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			local, err := env.openLocal(cmd.Context())
			if err != nil {
				return err
			}
			defer local.storages.Close()

			if _, err = local.admins.Bootstrap(cmd.Context()); err != nil {
				return err
			}
			if err = local.admins.ResetCredentials(cmd.Context(), username, password); err != nil {
				return fmt.Errorf("failed to set credentials: %w", err)
			}

			printOK(cmd.OutOrStdout(), "credentials updated for %q", username)
			return nil
		},
	}
	setCredentialsCmd.Flags().String("username", "", "new admin username")
	setCredentialsCmd.Flags().String("password", "", "new admin password")
	_ = setCredentialsCmd.MarkFlagRequired("username")
	_ = setCredentialsCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(setCredentialsCmd)
	return adminCmd
}

func PurgeCmd(env *Env) *cobra.Command {
	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every question",
		Long:  fmt.Sprintf("Delete every question. --confirm must be exactly %q.", service.DeleteAllConfirmationPhrase),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, _ := cmd.Flags().GetString("confirm")

			local, err := env.openLocal(cmd.Context())
			if err != nil {
				return err
			}
			defer local.storages.Close()

			deleted, err := local.questions.DeleteAll(cmd.Context(), phrase)
			if err != nil {
				return fmt.Errorf("purge refused: %w", err)
			}

			printWarn(cmd.OutOrStdout(), "deleted %d questions", deleted)
			return nil
		},
	}
	purgeCmd.Flags().String("confirm", "", "confirmation phrase")

	return purgeCmd
}
