package main

import (
	"context"
	"log/slog"
	"os"

	"taskmanager/config"
	httpdelivery "taskmanager/internal/delivery/http"
	"taskmanager/internal/delivery/http/middleware"
	"taskmanager/internal/delivery/http/router"
	"taskmanager/internal/delivery/http/router/handler"
	"taskmanager/internal/domain/lifecycle"
	"taskmanager/internal/domain/service"
	"taskmanager/internal/infra/auth"
	logs "taskmanager/internal/infra/log"
	"taskmanager/internal/infra/metrics"
	"taskmanager/internal/infra/persistence/postgres"
	"taskmanager/internal/infra/pubsub"
	"taskmanager/internal/usecase"
	"taskmanager/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			registerDatabase,
			seedCredentials,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		postgres.NewCredentialRepository,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		newSecret,
		newTokenService,
		newPasswordHasher,
		newEventPublisher,
		metrics.NewAuthMetrics,
		func(m *metrics.AuthMetrics) service.AuthMetrics { return m },
		func() service.Clock { return service.SystemClock{} },
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAuthService,
		impl.NewCredentialService,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
		handler.NewAuthHandler,
		newRouter,
		newServer,
	)
}

func newSecret(ctx context.Context, cfg *config.Config) (auth.Secret, error) {
	return auth.LoadSecret(ctx, cfg.SecretKey)
}

func newTokenService(secret auth.Secret, cfg *config.Config) (service.TokenService, error) {
	return auth.NewJWTService(secret, cfg.Auth.TokenLifetime)
}

func newPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

func newEventPublisher(ctx context.Context, lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	publisher, err := pubsub.NewEventPublisher(ctx, cfg.PubSub, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newRouter(authHandler *handler.AuthHandler, authMiddleware *middleware.AuthMiddleware, authMetrics *metrics.AuthMetrics) *router.Router {
	return router.NewRouter(authHandler, authMiddleware, authMetrics.Handler())
}

func newServer(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, r *router.Router) *httpdelivery.Server {
	server := httpdelivery.NewServer(cfg, logger, r)
	lc.Append(fx.Hook{
		OnStop: server.Shutdown,
	})

	return server
}

// registerDatabase checks connectivity, optionally migrates and owns the pool lifetime.
func registerDatabase(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, db *gorm.DB) {
	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := postgres.Ping(ctx, db); err != nil {
				return err
			}

			if cfg.Migrate {
				sqlDB, err := db.DB()
				if err != nil {
					return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
				}
				if err := postgres.Migrate(ctx, sqlDB, postgres.DialectPostgres); err != nil {
					return err
				}
			}

			go postgres.MonitorPool(monitorCtx, logger, db)

			return nil
		},
		OnStop: func(context.Context) error {
			stopMonitor()

			return postgres.Close(db)
		},
	})
}

// seedCredentials creates the configured bootstrap accounts once the database is ready.
func seedCredentials(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, credentials usecase.CredentialUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, seed := range cfg.Auth.Seed {
				created, err := credentials.EnsureCredential(ctx, &usecase.EnsureCredentialInput{
					Username: seed.Username,
					Password: seed.Password,
				})
				if err != nil {
					return errors.Wrapf(err, "failed to seed credential %q", seed.Username)
				}
				if created {
					logger.Info("Seeded credential", slog.String("username", seed.Username))
				}
			}

			return nil
		},
	})
}

func startServer(lc fx.Lifecycle, server *httpdelivery.Server) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := server.Serve(context.Background()); err != nil {
					slog.Error("Failed to start server", slog.Any("error", err))
					os.Exit(1)
				}
			}()

			return nil
		},
	})
}
