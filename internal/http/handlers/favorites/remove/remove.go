// Package remove реализует HTTP-обработчик удаления страны из избранного.
//
// Код страны извлекается из URL. Удаление безусловное: отсутствие
// страны в списке не считается ошибкой.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/andreyzhukovv/country-explorer/internal/http/middlewarectx"
	"github.com/andreyzhukovv/country-explorer/internal/http/response"
	"github.com/andreyzhukovv/country-explorer/internal/lib/sl"
	"github.com/andreyzhukovv/country-explorer/internal/models"
	"github.com/andreyzhukovv/country-explorer/internal/storage/repository"
)

// Handler обрабатывает запросы на удаление из избранного.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис бизнес-логики избранного
}

// Service описывает интерфейс бизнес-логики удаления из избранного.
type Service interface {
	Remove(ctx context.Context, userID, cca3 string) ([]models.Country, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить страну из избранного
// @Description Убирает страну по коду CCA3 из списка избранного пользователя.
// @Tags Favorites
// @Produce  json
// @Security BearerAuth
// @Param cca3 path string true "Код страны CCA3"
// @Success 200 {object} map[string]any "Обновлённый список избранного"
// @Failure 401 {object} response.ErrorResponse "Отсутствует или неверный токен"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /api/users/favorites/{cca3} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.favorites.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cca3 := chi.URLParam(r, "cca3")
	if cca3 == "" {
		log.Error("country code is missing in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("field cca3 is a required field"))
		return
	}

	userID := middlewarectx.UserIDFromContext(r.Context())

	favorites, err := h.service.Remove(r.Context(), userID, cca3)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Error("user not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("User not found"))
			return
		}
		log.Error("failed to remove favorite", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to remove favorite"))
		return
	}

	log.Info("favorite removed", slog.String("cca3", cca3))
	render.JSON(w, r, map[string]any{
		"message":   "Country removed from favorites",
		"favorites": favorites,
	})
}
