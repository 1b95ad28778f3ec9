// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements qactl, the operator tool for a go-ask-me
// installation.
//
// Local commands (migrate, moderation, admin, purge) open the database named
// by --dsn directly. Remote commands (ask, list, version) talk to a running
// server through the public JSON API.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-ask-me/internal/adapter"
	"github.com/MKhiriev/go-ask-me/internal/config"
	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/service"
	"github.com/MKhiriev/go-ask-me/internal/store"
	"github.com/MKhiriev/go-ask-me/internal/utils"
	"github.com/MKhiriev/go-ask-me/internal/validators"
)

// Env carries what every command needs. Defaults come from the client config;
// the persistent flags override them.
type Env struct {
	Config *config.ClientConfig
	Logger *logger.Logger
	Out    io.Writer

	// BcryptCost is used when a command hashes a password.
	BcryptCost int

	// NewClient builds the remote client. Replaced in tests.
	NewClient func(address string, timeout time.Duration, log *logger.Logger) (adapter.QuestionsClient, error)
}

// NewEnv returns an Env with the production client factory.
func NewEnv(cfg *config.ClientConfig, log *logger.Logger, out io.Writer) *Env {
	return &Env{
		Config:     cfg,
		Logger:     log,
		Out:        out,
		BcryptCost: bcrypt.DefaultCost,
		NewClient:  adapter.NewHTTPQuestionsClient,
	}
}

// NewRootCmd assembles the qactl command tree.
func NewRootCmd(env *Env, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "qactl",
		Short:         "qactl - operator tool for go-ask-me",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(env.Out)

	rootCmd.PersistentFlags().StringVar(&env.Config.DSN, "dsn", env.Config.DSN, "database DSN (SQLite path or postgres:// URL)")
	rootCmd.PersistentFlags().StringVar(&env.Config.ServerAddress, "server", env.Config.ServerAddress, "base URL of a running server")
	rootCmd.PersistentFlags().DurationVar(&env.Config.RequestTimeout, "timeout", env.Config.RequestTimeout, "timeout for remote requests")

	rootCmd.AddCommand(MigrateCmd(env))
	rootCmd.AddCommand(ModerationCmd(env))
	rootCmd.AddCommand(AdminCmd(env))
	rootCmd.AddCommand(PurgeCmd(env))
	rootCmd.AddCommand(AskCmd(env))
	rootCmd.AddCommand(ListCmd(env))
	rootCmd.AddCommand(VersionCmd(env))

	return rootCmd
}

// localServices opens the configured database with migrations applied and
// builds the services the local commands use. The caller closes the
// storages.
type localServices struct {
	storages  *store.Storages
	questions service.QuestionService
	settings  service.SettingsService
	admins    service.AdminService
}

func (e *Env) openLocal(ctx context.Context) (*localServices, error) {
	if err := e.Config.ValidateLocal(); err != nil {
		return nil, err
	}

	storages, err := store.NewStorages(ctx, config.Storage{DB: config.DB{DSN: e.Config.DSN}}, e.Logger)
	if err != nil {
		return nil, fmt.Errorf("error opening storage: %w", err)
	}

	validator := validators.NewFormValidator()
	return &localServices{
		storages:  storages,
		questions: service.NewQuestionService(storages.QuestionRepository, storages.SettingRepository, validator, e.Logger),
		settings:  service.NewSettingsService(storages.SettingRepository, e.Logger),
		admins:    service.NewAdminService(storages.AdminRepository, utils.NewBcryptHasher(e.BcryptCost), validator, e.Logger),
	}, nil
}

func (e *Env) remoteClient() (adapter.QuestionsClient, error) {
	if err := e.Config.ValidateRemote(); err != nil {
		return nil, err
	}
	return e.NewClient(e.Config.ServerAddress, e.Config.RequestTimeout, e.Logger)
}
