package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Versioning  VersioningConfig `mapstructure:"versioning"`
	Schema      SchemaConfig     `mapstructure:"schema"`
	Redis       RedisConfig      `mapstructure:"redis"`
	Tasks       TasksConfig      `mapstructure:"tasks"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver              string        `mapstructure:"driver"` // postgres, mysql or sqlite
	Host                string        `mapstructure:"host"`
	Port                string        `mapstructure:"port"`
	Username            string        `mapstructure:"username"`
	Password            string        `mapstructure:"password"`
	Database            string        `mapstructure:"database"` // file path or :memory: for sqlite
	SSLMode             string        `mapstructure:"sslMode"`
	MaxOpenConns        int           `mapstructure:"maxOpenConns"`
	MaxIdleConns        int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime     time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime     time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout        time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts       int           `mapstructure:"retryAttempts"`
	RetryDelay          time.Duration `mapstructure:"retryDelay"`          // seconds
	PoolMonitorInterval time.Duration `mapstructure:"poolMonitorInterval"` // seconds, 0 disables
	LogLevel            string        `mapstructure:"logLevel"`            // gorm log level
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
	Name   string `mapstructure:"name"`
}

// VersioningConfig controls the row audit trail
type VersioningConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SchemaConfig controls schema handling at startup
type SchemaConfig struct {
	AutoCreate bool `mapstructure:"autoCreate"`
}

// RedisConfig contains the search index connection settings
type RedisConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"keyPrefix"`
}

// TasksConfig contains background task dispatcher settings
type TasksConfig struct {
	Queues          []string `mapstructure:"queues"`
	WorkersPerQueue int      `mapstructure:"workersPerQueue"`
	QueueSize       int      `mapstructure:"queueSize"`
	MaxRetries      int      `mapstructure:"maxRetries"`
}
