package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/indexing"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/tasks"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/uow"
	"github.com/amirhossein-jamali/dbcoord/internal/domain/usecase/record"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/database/versioning"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/index"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/task"
	timeProvider "github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/config"
)

// searchIndex is an indexer the health endpoint can probe
type searchIndex interface {
	indexing.Indexer
	handler.Pinger
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      logger.ParseLevel(cfg.Logger.Level),
		Name:       cfg.Logger.Name,
	})
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	observer, err := metrics.NewPrometheusObserver(registry)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	managerOpts := []database.ManagerOption{database.WithPoolStatsRecorder(observer)}
	if cfg.Versioning.Enabled {
		managerOpts = append(managerOpts, database.WithVersioning(versioning.NewManager(tp, appLogger)))
	}

	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp, managerOpts...)
	if _, err := dbManager.Connect(context.Background()); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if cfg.Schema.AutoCreate {
		if err := dbManager.SchemaManager().CreateAll(context.Background()); err != nil {
			appLogger.Error("Failed to create schema", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	indexer, closeIndexer := newIndexer(cfg.Redis, appLogger)
	defer closeIndexer()

	dispatcher := task.NewDispatcher(task.Config{
		Queues:          cfg.Tasks.Queues,
		WorkersPerQueue: cfg.Tasks.WorkersPerQueue,
		QueueSize:       cfg.Tasks.QueueSize,
		MaxRetries:      cfg.Tasks.MaxRetries,
		RetryDelay:      coreport.Second,
	}, appLogger, tp)
	registerRecordTasks(dispatcher, appLogger)

	// units of work take their session from the request context
	factory := uow.NewFactory(nil,
		uow.WithLogger(appLogger),
		uow.WithObserver(observer),
		uow.WithTimeProvider(tp),
	)

	recordService := record.NewService(
		repository.NewRecordRepository(dbManager.DB(), appLogger),
		indexer,
		dispatcher,
		factory,
		tp,
		appLogger,
	)

	recordHandler := handler.NewRecordHandler(recordService, appLogger)
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"database": dbManager,
		"index":    indexer,
	}, dbManager.PoolMetrics, appLogger)

	sessions := func() *database.GormSession {
		return dbManager.NewSession(database.WithModelMapper(repository.NewRecordMapper()))
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, recordHandler, healthHandler, sessions, registry, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": dbManager.Config().Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// stop accepting requests first so no unit of work enqueues after the dispatcher closes
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down task dispatcher...", nil)
	dispatcher.Shutdown()
	stats := dispatcher.Stats()
	appLogger.Info("Server exited gracefully", map[string]any{
		"tasks_succeeded": stats.Succeeded,
		"tasks_failed":    stats.Failed,
		"tasks_retried":   stats.Retried,
	})
}

// newIndexer connects to redis when enabled and falls back to logging index changes
func newIndexer(cfg config.RedisConfig, appLogger coreport.Logger) (searchIndex, func()) {
	if !cfg.Enabled {
		appLogger.Info("Redis disabled, index changes are only logged", nil)
		return index.NewLogIndexer(appLogger), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	prefix := cfg.KeyPrefix
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}

	return index.NewRedisIndexer(client, prefix, appLogger), func() {
		if err := client.Close(); err != nil {
			appLogger.Warn("Failed to close redis client", map[string]any{
				"error": err.Error(),
			})
		}
	}
}

// registerRecordTasks installs the handlers for record notifications
func registerRecordTasks(dispatcher *task.Dispatcher, appLogger coreport.Logger) {
	notify := func(_ context.Context, t tasks.Task) error {
		appLogger.Info("Record changed", map[string]any{
			"task":        t.Name,
			"task_id":     t.ID,
			"record_id":   t.Payload["recordId"],
			"revision":    t.Payload["revision"],
			"enqueued_at": t.EnqueuedAt,
		})
		return nil
	}

	for _, name := range []string{record.TaskRecordCreated, record.TaskRecordUpdated, record.TaskRecordDeleted} {
		dispatcher.Register(name, notify)
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// sqlite only needs a file name; server databases need the full connection
	if cfg.Database.Driver != database.DriverSQLite {
		required := map[string]string{
			"database.host":     cfg.Database.Host,
			"database.port":     cfg.Database.Port,
			"database.username": cfg.Database.Username,
			"database.database": cfg.Database.Database,
		}
		for _, key := range []string{"database.host", "database.port", "database.username", "database.database"} {
			if required[key] != "" {
				continue
			}
			env := config.EnvPrefix + "_DB_" + strings.ToUpper(strings.TrimPrefix(key, "database."))
			if key == "database.database" {
				env = config.EnvPrefix + "_DB_NAME"
			}
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", key, env))
		}
	} else if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database")
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if len(cfg.Tasks.Queues) == 0 {
		missingConfigs = append(missingConfigs, "tasks.queues")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == database.DriverPostgres && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Database.Driver == database.DriverSQLite {
			warnings = append(warnings, "database.driver sqlite serializes all units of work on one connection")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
