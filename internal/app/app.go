// Package app собирает все зависимости сервиса подписок на журналы:
// хранилище, миграции, кеш, JWT, бизнес-сервисы и HTTP-сервер.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/eroshevich/magazine-subscription-service/internal/cache"
	"github.com/eroshevich/magazine-subscription-service/internal/config"
	"github.com/eroshevich/magazine-subscription-service/internal/lib/jwt"
	"github.com/eroshevich/magazine-subscription-service/internal/migrations"
	"github.com/eroshevich/magazine-subscription-service/internal/services"
	"github.com/eroshevich/magazine-subscription-service/internal/storage/repository"
)

// App хранит HTTP-сервер и ресурсы, которые нужно освободить при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New инициализирует приложение: подключается к базе, применяет миграции,
// поднимает кеш, собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	authService := services.NewAuthService(db, jwtMaker)
	magazineService := services.NewMagazineService(db, logger)
	planService := services.NewPlanService(db, db, logger)
	subscriptionService := services.NewSubscriptionService(db, db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, magazineService, planService, subscriptionService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до отмены контекста
// или ошибки сервера. При отмене выполняет graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
