package database

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// MemoryDatabase is the sqlite database name for a private in-memory database
const MemoryDatabase = ":memory:"

// Config represents database configuration
type Config struct {
	Driver              string        `mapstructure:"db_driver"`
	Host                string        `mapstructure:"db_host"`
	Port                int           `mapstructure:"db_port"`
	Username            string        `mapstructure:"db_username"`
	Password            string        `mapstructure:"db_password"`
	Database            string        `mapstructure:"db_name"`
	SSLMode             string        `mapstructure:"db_ssl_mode"`
	MaxOpenConns        int           `mapstructure:"db_max_open_conns"`
	MaxIdleConns        int           `mapstructure:"db_max_idle_conns"`
	ConnMaxLifetime     time.Duration `mapstructure:"db_conn_max_lifetime"`
	ConnMaxIdleTime     time.Duration `mapstructure:"db_conn_max_idle_time"`
	QueryTimeout        time.Duration `mapstructure:"db_query_timeout"`
	LogLevel            string        `mapstructure:"db_log_level"`
	RetryAttempts       int           `mapstructure:"db_retry_attempts"`
	RetryDelay          time.Duration `mapstructure:"db_retry_delay"`
	PoolMonitorInterval time.Duration `mapstructure:"db_pool_monitor_interval"`
}

// DefaultConfig returns a Config with default values
// No sensitive information is hardcoded - all must come from environment variables
func DefaultConfig() *Config {
	return &Config{
		Driver:              configEnvOrDefault("DBC_DB_DRIVER", DriverPostgres),
		Host:                configEnv("DBC_DB_HOST"),
		Port:                configEnvAsInt("DBC_DB_PORT", 0),
		Username:            configEnv("DBC_DB_USERNAME"),
		Password:            configEnv("DBC_DB_PASSWORD"),
		Database:            configEnv("DBC_DB_NAME"),
		SSLMode:             configEnvOrDefault("DBC_DB_SSL_MODE", "disable"),
		MaxOpenConns:        configEnvAsInt("DBC_DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:        configEnvAsInt("DBC_DB_MAX_IDLE_CONNS", 25),
		ConnMaxLifetime:     time.Duration(configEnvAsInt("DBC_DB_CONN_MAX_LIFETIME_MINUTES", 5)) * time.Minute,
		ConnMaxIdleTime:     time.Duration(configEnvAsInt("DBC_DB_CONN_MAX_IDLE_TIME_MINUTES", 5)) * time.Minute,
		QueryTimeout:        time.Duration(configEnvAsInt("DBC_DB_QUERY_TIMEOUT_SECONDS", 10)) * time.Second,
		LogLevel:            configEnvOrDefault("DBC_DB_LOG_LEVEL", "warn"),
		RetryAttempts:       configEnvAsInt("DBC_DB_RETRY_ATTEMPTS", 3),
		RetryDelay:          time.Duration(configEnvAsInt("DBC_DB_RETRY_DELAY_SECONDS", 2)) * time.Second,
		PoolMonitorInterval: 30 * time.Second,
	}
}

// SQLiteConfig returns a configuration for a sqlite database file, or an
// in-memory database when path is MemoryDatabase
func SQLiteConfig(path string) *Config {
	return &Config{
		Driver:        DriverSQLite,
		Database:      path,
		SSLMode:       "disable",
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverMySQL:
		if c.Host == "" {
			return errors.New("database host is required")
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("invalid port number: %d", c.Port)
		}
		if c.Username == "" {
			return errors.New("database username is required")
		}
		if c.Password == "" {
			return errors.New("database password is required")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.Database == "" {
		return errors.New("database name is required")
	}

	if c.Driver == DriverPostgres {
		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// IsMemory reports whether the configuration points at a private in-memory sqlite database
func (c *Config) IsMemory() bool {
	return c.Driver == DriverSQLite && c.Database == MemoryDatabase
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	switch c.Driver {
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.Username, c.Password, c.Host, c.Port, c.Database,
		)
	case DriverSQLite:
		if c.IsMemory() {
			return MemoryDatabase
		}
		return "file:" + c.Database + "?_foreign_keys=on&_busy_timeout=5000"
	default:
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
		)
	}
}

// AdminDSN returns a connection string for the server itself, used to create
// and drop the configured database
func (c *Config) AdminDSN() string {
	switch c.Driver {
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/?charset=utf8mb4&parseTime=True&loc=UTC",
			c.Username, c.Password, c.Host, c.Port,
		)
	default:
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=postgres sslmode=%s",
			c.Host, c.Port, c.Username, c.Password, c.SSLMode,
		)
	}
}

// URL returns the connection string in URL form, as used by the migration tooling
func (c *Config) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.SSLMode,
	)
}

// WithMaxOpenConnections returns a copy of the config with updated max open connections
func (c *Config) WithMaxOpenConnections(max int) *Config {
	newConfig := *c
	newConfig.MaxOpenConns = max
	return &newConfig
}

// WithQueryTimeout returns a copy of the config with updated query timeout
func (c *Config) WithQueryTimeout(timeout time.Duration) *Config {
	newConfig := *c
	newConfig.QueryTimeout = timeout
	return &newConfig
}

// configEnv gets a value from environment variables with no default
func configEnv(key string) string {
	return os.Getenv(key)
}

// configEnvOrDefault gets a value from environment variables with a default value
func configEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// configEnvAsInt gets an integer value from environment variables with a default
func configEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
