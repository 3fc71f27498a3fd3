package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	pgdriver "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/model"
)

// Dialects with versioned migrations
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
	DialectMySQL    = "mysql"
)

// VersionTable is the bookkeeping table maintained by golang-migrate
const VersionTable = "schema_migrations"

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// SchemaManager creates, drops and migrates the schema of one database
type SchemaManager struct {
	db      *gorm.DB
	dialect string
	url     string
	logger  coreport.Logger
}

var _ persistence.SchemaManager = (*SchemaManager)(nil)

// NewSchemaManager creates a schema manager. url is only used for postgres,
// where migrations run on their own pgx connection.
func NewSchemaManager(db *gorm.DB, dialect, url string, logger coreport.Logger) *SchemaManager {
	return &SchemaManager{
		db:      db,
		dialect: dialect,
		url:     url,
		logger:  logger,
	}
}

// CreateAll creates every registered table and stamps the latest migration version
func (m *SchemaManager) CreateAll(ctx context.Context) error {
	models := model.All()
	m.logger.Info("Creating database schema", map[string]any{
		"dialect": m.dialect,
		"tables":  len(models),
	})

	if err := m.db.WithContext(ctx).AutoMigrate(models...); err != nil {
		m.logger.Error("Failed to create tables", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("create tables: %w", err)
	}

	if m.dialect == DialectMySQL {
		m.logger.Warn("Migration versions are not tracked for this dialect", map[string]any{
			"dialect": m.dialect,
		})
		return nil
	}

	latest, err := m.latestVersion()
	if err != nil {
		return err
	}

	err = m.withMigrate(ctx, func(mig *migrate.Migrate) error {
		return mig.Force(int(latest))
	})
	if err != nil {
		return fmt.Errorf("stamp version %d: %w", latest, err)
	}

	m.logger.Info("Database schema created", map[string]any{
		"version": latest,
	})
	return nil
}

// DropAll drops every registered table in reverse order, then the version table
func (m *SchemaManager) DropAll(ctx context.Context) error {
	models := model.All()
	migrator := m.db.WithContext(ctx).Migrator()

	for i := len(models) - 1; i >= 0; i-- {
		if err := migrator.DropTable(models[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	if err := migrator.DropTable(VersionTable); err != nil {
		return fmt.Errorf("drop %s: %w", VersionTable, err)
	}

	m.logger.Info("Database schema dropped", map[string]any{
		"dialect": m.dialect,
	})
	return nil
}

// Upgrade applies all pending migrations
func (m *SchemaManager) Upgrade(ctx context.Context) error {
	err := m.withMigrate(ctx, func(mig *migrate.Migrate) error {
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	})
	if err != nil {
		m.logger.Error("Failed to upgrade database schema", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("upgrade: %w", err)
	}

	m.logger.Info("Database schema upgraded", nil)
	return nil
}

// Downgrade reverts the given number of migrations
func (m *SchemaManager) Downgrade(ctx context.Context, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("downgrade steps must be positive, got: %d", steps)
	}

	err := m.withMigrate(ctx, func(mig *migrate.Migrate) error {
		return mig.Steps(-steps)
	})
	if err != nil {
		m.logger.Error("Failed to downgrade database schema", map[string]any{
			"error": err.Error(),
			"steps": steps,
		})
		return fmt.Errorf("downgrade: %w", err)
	}

	m.logger.Info("Database schema downgraded", map[string]any{
		"steps": steps,
	})
	return nil
}

// Version reports the current migration version and whether it is dirty.
// A database without any applied migration reports version 0.
func (m *SchemaManager) Version(ctx context.Context) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)
	err := m.withMigrate(ctx, func(mig *migrate.Migrate) error {
		var err error
		version, dirty, err = mig.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			version, dirty = 0, false
			return nil
		}
		return err
	})
	if err != nil {
		return 0, false, fmt.Errorf("read version: %w", err)
	}
	return version, dirty, nil
}

func (m *SchemaManager) source() (source.Driver, error) {
	src, err := iofs.New(migrationsFS, "migrations/"+m.dialect)
	if err != nil {
		return nil, fmt.Errorf("migrate src: %w", err)
	}
	return src, nil
}

func (m *SchemaManager) latestVersion() (uint, error) {
	src, err := m.source()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	version, err := src.First()
	if err != nil {
		return 0, fmt.Errorf("first migration: %w", err)
	}
	for {
		next, err := src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			return version, nil
		}
		if err != nil {
			return 0, fmt.Errorf("next migration: %w", err)
		}
		version = next
	}
}

// withMigrate runs fn against a migrate instance for the configured dialect
func (m *SchemaManager) withMigrate(ctx context.Context, fn func(mig *migrate.Migrate) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch m.dialect {
	case DialectSQLite:
		src, err := m.source()
		if err != nil {
			return err
		}
		sqlDB, err := m.db.DB()
		if err != nil {
			return fmt.Errorf("get database connection: %w", err)
		}
		driver, err := sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
		if err != nil {
			return fmt.Errorf("migrate driver: %w", err)
		}
		mig, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
		if err != nil {
			return fmt.Errorf("migrate init: %w", err)
		}
		// the driver shares gorm's pool, so mig.Close must not be called
		return fn(mig)

	case DialectPostgres:
		src, err := m.source()
		if err != nil {
			return err
		}
		sqldb, err := sql.Open("pgx", m.url)
		if err != nil {
			return fmt.Errorf("open sql db: %w", err)
		}
		defer sqldb.Close()
		if err := sqldb.PingContext(ctx); err != nil {
			return fmt.Errorf("ping db: %w", err)
		}
		driver, err := pgdriver.WithInstance(sqldb, &pgdriver.Config{})
		if err != nil {
			return fmt.Errorf("migrate driver: %w", err)
		}
		mig, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
		if err != nil {
			return fmt.Errorf("migrate init: %w", err)
		}
		defer mig.Close()
		return fn(mig)

	default:
		return fmt.Errorf("%w: %s", domainErr.ErrUnsupportedDriver, m.dialect)
	}
}
