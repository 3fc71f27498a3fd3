package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable read by the loader
const EnvPrefix = "DBC"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// .env files are optional
	_ = loadDotEnvFile()

	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads <env>.yaml from the first path that has it and applies
// environment overrides
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)           // seconds
	v.SetDefault("database.poolMonitorInterval", 30) // seconds
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("versioning.enabled", true)
	v.SetDefault("schema.autoCreate", false)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.keyPrefix", "dbcoord")

	v.SetDefault("tasks.queues", []string{"default", "records"})
	v.SetDefault("tasks.workersPerQueue", 2)
	v.SetDefault("tasks.queueSize", 256)
	v.SetDefault("tasks.maxRetries", 3)
}

// getEnvironment determines the environment from DBC_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"DB_DRIVER":       "database.driver",
		"DB_HOST":         "database.host",
		"DB_PORT":         "database.port",
		"DB_USERNAME":     "database.username",
		"DB_PASSWORD":     "database.password",
		"DB_NAME":         "database.database",
		"DB_SSL_MODE":     "database.sslMode",
		"SERVER_HOST":     "server.host",
		"SERVER_PORT":     "server.port",
		"LOGGER_LEVEL":    "logger.level",
		"REDIS_ADDR":      "redis.addr",
		"REDIS_PASSWORD":  "redis.password",
		"REDIS_KEYPREFIX": "redis.keyPrefix",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(EnvPrefix + "_" + env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"DB_MAX_OPEN_CONNS":                "database.maxOpenConns",
		"DB_MAX_IDLE_CONNS":                "database.maxIdleConns",
		"DB_CONN_MAX_LIFETIME_MINUTES":     "database.connMaxLifetime",
		"DB_CONN_MAX_IDLE_TIME_MINUTES":    "database.connMaxIdleTime",
		"DB_QUERY_TIMEOUT_SECONDS":         "database.queryTimeout",
		"DB_RETRY_ATTEMPTS":                "database.retryAttempts",
		"DB_RETRY_DELAY_SECONDS":           "database.retryDelay",
		"DB_POOL_MONITOR_INTERVAL_SECONDS": "database.poolMonitorInterval",
		"TASKS_WORKERS_PER_QUEUE":          "tasks.workersPerQueue",
	}
	for env, key := range intOverrides {
		if value, ok := getEnvInt(EnvPrefix + "_" + env); ok {
			v.Set(key, value)
		}
	}

	if enabled, err := strconv.ParseBool(os.Getenv(EnvPrefix + "_VERSIONING_ENABLED")); err == nil {
		v.Set("versioning.enabled", enabled)
	}
	if enabled, err := strconv.ParseBool(os.Getenv(EnvPrefix + "_REDIS_ENABLED")); err == nil {
		v.Set("redis.enabled", enabled)
	}
}

// getEnvInt reads a non-negative integer environment variable
func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}

	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return 0, false
	}
	return val, true
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute

	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second
	config.Database.PoolMonitorInterval = config.Database.PoolMonitorInterval * time.Second
}
