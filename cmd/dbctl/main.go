package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/config"
)

var errNotConfirmed = errors.New("refusing to destroy data without --yes-i-know")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, c := newRootCommand()
	err := root.ExecuteContext(ctx)
	c.teardown()
	if err != nil {
		os.Exit(1)
	}
}

// cli holds what every subcommand shares
type cli struct {
	logger  coreport.Logger
	manager *database.Manager
	verbose bool
	confirm bool
	steps   int
}

func newRootCommand() (*cobra.Command, *cli) {
	c := &cli{}

	root := &cobra.Command{
		Use:           "dbctl",
		Short:         "Manage the database and schema of the record service",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.setup()
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Create the database",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.manager.CreateDatabase(cmd.Context())
			},
		},
		c.confirmed(&cobra.Command{
			Use:   "drop",
			Short: "Drop the database",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.manager.DropDatabase(cmd.Context())
			},
		}),
		&cobra.Command{
			Use:   "init",
			Short: "Create every table and stamp the schema at the latest version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.withSchema(cmd, func(ctx context.Context, sm persistence.SchemaManager) error {
					return sm.CreateAll(ctx)
				})
			},
		},
		c.confirmed(&cobra.Command{
			Use:   "destroy",
			Short: "Drop every table",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.withSchema(cmd, func(ctx context.Context, sm persistence.SchemaManager) error {
					return sm.DropAll(ctx)
				})
			},
		}),
		&cobra.Command{
			Use:   "upgrade",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.withSchema(cmd, func(ctx context.Context, sm persistence.SchemaManager) error {
					return sm.Upgrade(ctx)
				})
			},
		},
		c.downgradeCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.withSchema(cmd, func(ctx context.Context, sm persistence.SchemaManager) error {
					version, dirty, err := sm.Version(ctx)
					if err != nil {
						return err
					}
					if dirty {
						_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d (dirty)\n", version)
						return err
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), version)
					return err
				})
			},
		},
	)

	return root, c
}

func (c *cli) downgradeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "downgrade",
		Short: "Revert applied migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.steps <= 0 {
				return fmt.Errorf("--steps must be positive, got %d", c.steps)
			}
			return c.withSchema(cmd, func(ctx context.Context, sm persistence.SchemaManager) error {
				return sm.Downgrade(ctx, c.steps)
			})
		},
	}
	cmd.Flags().IntVar(&c.steps, "steps", 1, "number of migrations to revert")
	return cmd
}

// confirmed guards a destructive command behind --yes-i-know
func (c *cli) confirmed(cmd *cobra.Command) *cobra.Command {
	run := cmd.RunE
	cmd.Flags().BoolVar(&c.confirm, "yes-i-know", false, "confirm that data will be lost")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if !c.confirm {
			return errNotConfirmed
		}
		return run(cmd, args)
	}
	return cmd
}

func (c *cli) setup() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	level := logger.ParseLevel(cfg.Logger.Level)
	if c.verbose {
		level = coreport.LogLevelDebug
	}
	c.logger = logger.NewZapLogger(logger.Options{Level: level, Name: "dbctl"})

	dbConfig := database.CreateConfigFromViperConfig(cfg)
	dbConfig.PoolMonitorInterval = 0
	if err := dbConfig.Validate(); err != nil {
		return err
	}
	c.manager = database.NewManager(dbConfig, c.logger, timeProvider.NewRealTimeProvider())
	return nil
}

func (c *cli) teardown() {
	if c.manager != nil && c.manager.DB() != nil {
		_ = c.manager.Close()
	}
	if c.logger != nil {
		_ = c.logger.Flush()
	}
}

// withSchema connects to the database and runs fn against its schema manager
func (c *cli) withSchema(cmd *cobra.Command, fn func(ctx context.Context, sm persistence.SchemaManager) error) error {
	ctx := cmd.Context()
	if _, err := c.manager.Connect(ctx); err != nil {
		return err
	}
	if err := fn(ctx, c.manager.SchemaManager()); err != nil {
		c.logger.Error("Schema command failed", map[string]any{
			"command": cmd.Name(),
			"error":   err.Error(),
		})
		return err
	}
	c.logger.Info("Schema command completed", map[string]any{
		"command": cmd.Name(),
	})
	return nil
}
