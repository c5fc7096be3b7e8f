// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/afyaplate/v1/internal/application/advisor"
	"github.com/afyaplate/v1/internal/domain/catalog"
	"github.com/afyaplate/v1/internal/domain/mealplan"
	"github.com/afyaplate/v1/internal/infrastructure/ai/ollama"
	"github.com/afyaplate/v1/internal/infrastructure/config"
	"github.com/afyaplate/v1/internal/infrastructure/http/server"
	gormRepo "github.com/afyaplate/v1/internal/infrastructure/persistence/gorm"
	"github.com/afyaplate/v1/internal/infrastructure/persistence/memory"
	redisRepo "github.com/afyaplate/v1/internal/infrastructure/persistence/redis"
	"github.com/afyaplate/v1/internal/infrastructure/persistence/sqlite"
	"github.com/afyaplate/v1/internal/ports/outbound"
	"github.com/afyaplate/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	// Infrastructure modules
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,

	// Domain modules
	DomainModule,

	// Repository modules
	RepositoryModule,

	// Service modules
	ServiceModule,

	// HTTP modules
	HTTPModule,

	// Lifecycle hooks
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the feedback store
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		db, err := sqlite.SetupDatabase(cfg.Database.Path, sqlite.ParseLogLevel(cfg.Database.LogLevel))
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}

		log.Info("Connected to SQLite database",
			zap.String("path", cfg.Database.Path),
			zap.Bool("in_memory", cfg.Database.Path == ":memory:"),
		)

		return db, nil
	},
)

// CacheModule provides report caching, Redis when enabled and an
// in-process fallback otherwise
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.CacheRepository {
		if cfg.Redis.Enable {
			cache, err := redisRepo.NewCacheRepository(cfg.Redis, cfg.RedisAddr(), log)
			if err == nil {
				return cache
			}
			log.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
		}
		log.Info("Using in-memory report cache")
		return memory.NewCacheRepository()
	},
)

// DomainModule provides the catalog and the recommendation engine
var DomainModule = fx.Provide(
	catalog.New,
	mealplan.NewEngine,
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewFeedbackRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	// Generative backend, nil when disabled so the advisor runs
	// deterministically
	func(cfg *config.Config, log *zap.Logger) outbound.AdvisorAI {
		if !cfg.AI.Enable {
			log.Info("Generative backend disabled, recommendations are rule-based only")
			return nil
		}
		return ollama.NewClient(ollama.Config{
			BaseURL: cfg.AI.Host,
			Model:   cfg.AI.Model,
			Timeout: cfg.AI.Timeout,
		}, log)
	},

	// Advisor service
	advisor.NewAdvisorService,
)

// HTTPModule provides HTTP server and handlers
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	cache outbound.CacheRepository,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting AfyaPlate application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down AfyaPlate application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if closer, ok := cache.(io.Closer); ok {
				if err := closer.Close(); err != nil {
					log.Error("Failed to close cache", zap.Error(err))
				}
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
