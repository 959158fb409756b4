// Package list реализует HTTP-обработчик чтения списка избранного.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/andreyzhukovv/country-explorer/internal/http/middlewarectx"
	"github.com/andreyzhukovv/country-explorer/internal/http/response"
	"github.com/andreyzhukovv/country-explorer/internal/lib/sl"
	"github.com/andreyzhukovv/country-explorer/internal/models"
	"github.com/andreyzhukovv/country-explorer/internal/storage/repository"
)

// Handler обрабатывает запросы на чтение избранного.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис бизнес-логики избранного
}

// Service описывает интерфейс бизнес-логики чтения избранного.
type Service interface {
	List(ctx context.Context, userID string) ([]models.Country, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список избранных стран
// @Description Возвращает список избранного текущего пользователя.
// @Tags Favorites
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список избранного"
// @Failure 401 {object} response.ErrorResponse "Отсутствует или неверный токен"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /api/users/favorites [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.favorites.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := middlewarectx.UserIDFromContext(r.Context())

	favorites, err := h.service.List(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Error("user not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("User not found"))
			return
		}
		log.Error("failed to list favorites", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list favorites"))
		return
	}
	if favorites == nil {
		favorites = []models.Country{}
	}

	log.Info("favorites listed", slog.Int("count", len(favorites)))
	render.JSON(w, r, map[string]any{
		"favorites": favorites,
	})
}
