package countryexplorer

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/andreyzhukovv/country-explorer/internal/cache"
	"github.com/andreyzhukovv/country-explorer/internal/config"
	"github.com/andreyzhukovv/country-explorer/internal/countries"
	"github.com/andreyzhukovv/country-explorer/internal/lib/jwt"
	authservice "github.com/andreyzhukovv/country-explorer/internal/services/auth"
	explorerservice "github.com/andreyzhukovv/country-explorer/internal/services/explorer"
	favoritesservice "github.com/andreyzhukovv/country-explorer/internal/services/favorites"
	"github.com/andreyzhukovv/country-explorer/internal/storage"
	"github.com/andreyzhukovv/country-explorer/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(ctx, cfg.MongoConnection)
	if err != nil {
		return nil, err
	}
	if err = db.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	users := repository.NewUsers(db)
	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	apiClient := countries.NewClient(cfg.Countries.BaseURL)

	authService := authservice.NewAuthService(users, jwtMaker)
	favoritesService := favoritesservice.NewFavoritesService(users, logger)
	explorerService := explorerservice.NewExplorerService(apiClient, cacheRedis, cfg.CacheTTL, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, cfg, authService, favoritesService, explorerService)

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
		cache:  cacheRedis,
	}, nil
}

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
		if closeErr := a.db.Close(timeoutCtx); closeErr != nil {
			a.logger.Error("failed to close mongo connection", slog.Any("err", closeErr))
		}
		return err
	}
}
