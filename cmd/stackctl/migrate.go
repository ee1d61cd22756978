package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"github.com/HammerMeetNail/aistackhub/internal/config"
	"github.com/HammerMeetNail/aistackhub/internal/database"
	"github.com/HammerMeetNail/aistackhub/internal/logging"
)

func newMigrateCmd() *cobra.Command {
	var dsn, dir string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the share database schema",
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", "", "postgres connection string (default: from DB_* environment)")
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "read migrations from this directory instead of the built-in set")

	open := func() (*database.Migrator, error) {
		if dsn == "" {
			cfg, err := config.Load()
			if err != nil {
				return nil, fmt.Errorf("loading config: %w", err)
			}
			dsn = cfg.Database.DSN()
		}
		if dir != "" {
			return database.NewMigratorFromDir(dsn, dir)
		}
		return database.NewMigrator(dsn)
	}

	run := func(name string, apply func(*database.Migrator) error) *cobra.Command {
		return &cobra.Command{
			Use:   name,
			Short: fmt.Sprintf("Run %s migrations", name),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := open()
				if err != nil {
					return err
				}
				defer func() { _ = m.Close() }()
				if err := apply(m); err != nil {
					return err
				}
				logging.Info("Migrations applied", map[string]interface{}{"direction": name})
				return printVersion(cmd, m)
			},
		}
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := open()
			if err != nil {
				return err
			}
			defer func() { _ = m.Close() }()
			return printVersion(cmd, m)
		},
	}

	cmd.AddCommand(
		run("up", (*database.Migrator).Up),
		run("down", (*database.Migrator).Down),
		version,
	)
	return cmd
}

func printVersion(cmd *cobra.Command, m *database.Migrator) error {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
		return err
	}
	if err != nil {
		return fmt.Errorf("reading version: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
	return err
}
