// Package countryexplorer предоставляет маршруты для основного приложения.
package countryexplorer

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/andreyzhukovv/country-explorer/internal/config"
	"github.com/andreyzhukovv/country-explorer/internal/http/handlers/auth/login"
	"github.com/andreyzhukovv/country-explorer/internal/http/handlers/auth/register"
	countrycompare "github.com/andreyzhukovv/country-explorer/internal/http/handlers/countries/compare"
	countrylist "github.com/andreyzhukovv/country-explorer/internal/http/handlers/countries/list"
	countryread "github.com/andreyzhukovv/country-explorer/internal/http/handlers/countries/read"
	favoriteadd "github.com/andreyzhukovv/country-explorer/internal/http/handlers/favorites/add"
	favoritelist "github.com/andreyzhukovv/country-explorer/internal/http/handlers/favorites/list"
	favoriteremove "github.com/andreyzhukovv/country-explorer/internal/http/handlers/favorites/remove"
	"github.com/andreyzhukovv/country-explorer/internal/http/handlers/health"
	searcheslist "github.com/andreyzhukovv/country-explorer/internal/http/handlers/searches/list"
	"github.com/andreyzhukovv/country-explorer/internal/http/handlers/user/profile"
	"github.com/andreyzhukovv/country-explorer/internal/http/middlewarectx"
	authservice "github.com/andreyzhukovv/country-explorer/internal/services/auth"
	explorerservice "github.com/andreyzhukovv/country-explorer/internal/services/explorer"
	favoritesservice "github.com/andreyzhukovv/country-explorer/internal/services/favorites"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	authService *authservice.AuthService,
	favoritesService *favoritesservice.FavoritesService,
	explorerService *explorerservice.ExplorerService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	limiter := rate.NewLimiter(rate.Limit(50), 100)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/users", register.New(logger, authService).ServeHTTP)
		r.Post("/users/login", login.New(logger, authService).ServeHTTP)

		// Каталог стран: открыт для всех, но авторизованный пользователь
		// получает персонализацию (история поиска)
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.OptionalJWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))
			r.Get("/countries", countrylist.New(logger, explorerService).ServeHTTP)
			r.Get("/countries/compare", countrycompare.New(logger, explorerService).ServeHTTP)
			r.Get("/countries/{cca3}", countryread.New(logger, explorerService).ServeHTTP)
		})

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))
			r.Get("/users/profile", profile.New(logger, authService).ServeHTTP)
			r.Post("/users/favorites", favoriteadd.New(logger, favoritesService).ServeHTTP)
			r.Delete("/users/favorites/{cca3}", favoriteremove.New(logger, favoritesService).ServeHTTP)
			r.Get("/users/favorites", favoritelist.New(logger, favoritesService).ServeHTTP)
			r.Get("/users/searches", searcheslist.New(logger, explorerService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
