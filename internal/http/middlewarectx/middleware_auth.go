// Package middlewarectx содержит HTTP middleware для обработки и проверки JWT токенов.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке Authorization
// и в случае успеха добавляет в контекст имя и идентификатор пользователя
// для дальнейшего использования в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/andreyzhukovv/country-explorer/internal/http/response"
	"github.com/andreyzhukovv/country-explorer/internal/lib/sl"
	authservice "github.com/andreyzhukovv/country-explorer/internal/services/auth"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для имени пользователя в контексте
	User Key = "username"
	// UserID — ключ для идентификатора пользователя в контексте
	UserID Key = "user_id"
)

// Service описывает интерфейс сервиса для валидации JWT токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*authservice.TokenInfo, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если токен валиден, добавляет имя и идентификатор пользователя в контекст
// запроса, иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			info, err := tokenInfo(r, authService)
			if err != nil {
				log.Error("authorization failed", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), info)))
		})
	}
}

// OptionalJWTMiddleware пропускает запрос в любом случае, но если в
// заголовке есть валидный токен, добавляет данные пользователя в контекст.
// Используется на открытых конечных точках каталога, где авторизованный
// пользователь получает персонализацию (история поиска).
func OptionalJWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info, err := tokenInfo(r, authService)
			if err == nil {
				r = r.WithContext(withUser(r.Context(), info))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tokenInfo(r *http.Request, authService Service) (*authservice.TokenInfo, error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errMissingHeader
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	info, err := authService.ValidateToken(r.Context(), tokenStr)
	if err != nil {
		return nil, errInvalidToken
	}
	return info, nil
}

func withUser(ctx context.Context, info *authservice.TokenInfo) context.Context {
	ctx = context.WithValue(ctx, User, info.Username)
	return context.WithValue(ctx, UserID, info.UserID)
}

// Username возвращает имя пользователя из контекста запроса,
// пустую строку для анонимного запроса.
func Username(ctx context.Context) string {
	username, _ := ctx.Value(User).(string)
	return username
}

// UserIDFromContext возвращает идентификатор пользователя из контекста
// запроса, пустую строку для анонимного запроса.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(UserID).(string)
	return id
}
