package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database/versioning"
)

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	errorMapper       *ErrorMapper
	timeProvider      coreport.TimeProvider
	versioning        *versioning.Manager
	statsRecorder     PoolStatsRecorder
	connectionMonitor *ConnectionPoolMonitor
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithVersioning enables the audit trail on the connection and on every session
func WithVersioning(v *versioning.Manager) ManagerOption {
	return func(m *Manager) {
		m.versioning = v
	}
}

// WithPoolStatsRecorder forwards connection pool samples to r
func WithPoolStatsRecorder(r PoolStatsRecorder) ManagerOption {
	return func(m *Manager) {
		m.statsRecorder = r
	}
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider, opts ...ManagerOption) *Manager {
	m := &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Connect establishes the database connection, retrying transient failures
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	retry := RetryConfig{
		MaxRetries:    m.config.RetryAttempts,
		RetryInterval: m.config.RetryDelay,
		MaxInterval:   4 * m.config.RetryDelay,
		JitterFactor:  0.2,
	}

	var gormDB *gorm.DB
	err := RetryOnTransientError(ctx, retry, func() error {
		dialector, err := m.dialector(m.config.DSN())
		if err != nil {
			return err
		}
		gormDB, err = gorm.Open(dialector, m.gormConfig())
		return err
	}, m.errorMapper, m.logger)
	if err != nil {
		m.logger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if m.versioning != nil {
		if err := m.versioning.Register(gormDB); err != nil {
			return nil, err
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)
	if m.config.IsMemory() {
		// every connection would get its own empty in-memory database
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	}

	m.db = gormDB

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
		"versioning":     m.versioning != nil,
	})

	if m.config.PoolMonitorInterval > 0 {
		m.connectionMonitor = NewConnectionPoolMonitor(m.db.DB, m.logger, m.statsRecorder)
		if err := m.connectionMonitor.Start(m.config.PoolMonitorInterval); err != nil {
			m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
		}
	}

	return m.db, nil
}

func (m *Manager) gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
		// writes always run inside the session transaction
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}
}

func (m *Manager) dialector(dsn string) (gorm.Dialector, error) {
	switch m.config.Driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %s", domainErr.ErrUnsupportedDriver, m.config.Driver)
	}
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Config returns the database configuration
func (m *Manager) Config() *Config {
	return m.config
}

// NewSession creates a transactional session on the connection.
// Sessions audit their flushes when versioning is enabled.
func (m *Manager) NewSession(opts ...SessionOption) *GormSession {
	if m.versioning != nil {
		opts = append([]SessionOption{WithTransactionAuditor(m.versioning)}, opts...)
	}
	return NewGormSession(m.db, m.logger, opts...)
}

// SchemaManager returns the schema manager for the connected database
func (m *Manager) SchemaManager() *migration.SchemaManager {
	return migration.NewSchemaManager(m.db, m.config.Driver, m.config.URL(), m.logger)
}

// Versioning returns the versioning manager, or nil when versioning is disabled
func (m *Manager) Versioning() *versioning.Manager {
	return m.versioning
}

// PoolMetrics returns the last connection pool sample, or the live pool
// statistics when monitoring is disabled
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor != nil {
		return m.connectionMonitor.GetMetrics()
	}
	if m.db == nil {
		return ConnectionPoolMetrics{}
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return ConnectionPoolMetrics{}
	}
	stats := sqlDB.Stats()
	return ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
}

// Ping checks that the database is reachable
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return domainErr.ErrDatabaseConnection
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return m.errorMapper.MapError(err, "ping")
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return m.errorMapper.MapError(sqlDB.PingContext(ctx), "ping")
}

// CreateDatabase creates the configured database on its server.
// For sqlite it creates an empty database file.
func (m *Manager) CreateDatabase(ctx context.Context) error {
	switch m.config.Driver {
	case DriverSQLite:
		if m.config.IsMemory() {
			return nil
		}
		f, err := os.OpenFile(m.config.Database, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return fmt.Errorf("create database file: %w", err)
		}
		return f.Close()
	default:
		return m.execAdmin(ctx, "CREATE DATABASE "+m.quoteIdentifier(m.config.Database))
	}
}

// DropDatabase drops the configured database from its server.
// For sqlite it removes the database file.
func (m *Manager) DropDatabase(ctx context.Context) error {
	switch m.config.Driver {
	case DriverSQLite:
		if m.config.IsMemory() {
			return nil
		}
		if err := os.Remove(m.config.Database); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove database file: %w", err)
		}
		return nil
	default:
		return m.execAdmin(ctx, "DROP DATABASE IF EXISTS "+m.quoteIdentifier(m.config.Database))
	}
}

func (m *Manager) execAdmin(ctx context.Context, statement string) error {
	dialector, err := m.dialector(m.config.AdminDSN())
	if err != nil {
		return err
	}

	admin, err := gorm.Open(dialector, m.gormConfig())
	if err != nil {
		return m.errorMapper.MapError(err, "connect to server")
	}
	sqlDB, err := admin.DB()
	if err != nil {
		return m.errorMapper.MapError(err, "connect to server")
	}
	defer sqlDB.Close()

	m.logger.Info("Executing administrative statement", map[string]any{
		"statement": statement,
	})
	if err := admin.WithContext(ctx).Exec(statement).Error; err != nil {
		return m.errorMapper.MapError(err, "administrative statement")
	}
	return nil
}

func (m *Manager) quoteIdentifier(name string) string {
	if m.config.Driver == DriverMySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// GetErrorMapper returns the error mapper
func (m *Manager) GetErrorMapper() *ErrorMapper {
	return m.errorMapper
}
