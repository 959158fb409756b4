// Package add реализует HTTP-обработчик добавления страны в избранное.
//
// Страна передаётся в теле запроса целиком и сохраняется как снимок
// данных на момент добавления. Повторное добавление той же страны —
// конфликт.
package add

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/andreyzhukovv/country-explorer/internal/http/middlewarectx"
	"github.com/andreyzhukovv/country-explorer/internal/http/response"
	"github.com/andreyzhukovv/country-explorer/internal/lib/sl"
	"github.com/andreyzhukovv/country-explorer/internal/models"
	"github.com/andreyzhukovv/country-explorer/internal/storage/repository"
)

// Request — входные данные для добавления страны в избранное.
type Request struct {
	Country models.Country `json:"country" validate:"required"`
}

// Handler обрабатывает запросы на добавление в избранное.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис бизнес-логики избранного
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики добавления в избранное.
type Service interface {
	Add(ctx context.Context, userID string, country models.Country) ([]models.Country, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить страну в избранное
// @Description Сохраняет снимок страны во встроенном списке избранного пользователя.
// @Tags Favorites
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Страна для добавления"
// @Success 200 {object} map[string]any "Обновлённый список избранного"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или страна уже в избранном"
// @Failure 401 {object} response.ErrorResponse "Отсутствует или неверный токен"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /api/users/favorites [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.favorites.add"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if req.Country.CCA3 == "" {
		log.Error("country code is missing")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("field cca3 is a required field"))
		return
	}

	userID := middlewarectx.UserIDFromContext(r.Context())

	favorites, err := h.service.Add(r.Context(), userID, req.Country)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyFavorite):
			log.Error("country already favorited", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Country already in favorites"))
		case errors.Is(err, repository.ErrUserNotFound):
			log.Error("user not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("User not found"))
		default:
			log.Error("failed to add favorite", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add favorite"))
		}
		return
	}

	log.Info("favorite added", slog.String("cca3", req.Country.CCA3))
	render.JSON(w, r, map[string]any{
		"message":   "Country added to favorites",
		"favorites": favorites,
	})
}
