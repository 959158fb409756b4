// Package list реализует HTTP-обработчик истории поисковых запросов
// текущего пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/andreyzhukovv/country-explorer/internal/http/middlewarectx"
	"github.com/andreyzhukovv/country-explorer/internal/http/response"
	"github.com/andreyzhukovv/country-explorer/internal/lib/sl"
)

// Handler обрабатывает запросы на чтение истории поиска.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс чтения истории поиска.
type Service interface {
	RecentSearches(ctx context.Context, username string) ([]string, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary История поисковых запросов
// @Description Возвращает недавние поисковые запросы текущего пользователя, от новых к старым.
// @Tags Searches
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "История поиска"
// @Failure 401 {object} response.ErrorResponse "Отсутствует или неверный токен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/users/searches [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.searches.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username := middlewarectx.Username(r.Context())

	searches, err := h.service.RecentSearches(r.Context(), username)
	if err != nil {
		log.Error("failed to read search history", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read search history"))
		return
	}

	log.Info("search history read", slog.Int("count", len(searches)))
	render.JSON(w, r, map[string]any{
		"searches": searches,
	})
}
