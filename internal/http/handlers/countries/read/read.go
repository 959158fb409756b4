// Package read реализует HTTP-обработчик получения одной страны по коду CCA3.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/andreyzhukovv/country-explorer/internal/http/response"
	"github.com/andreyzhukovv/country-explorer/internal/lib/sl"
	"github.com/andreyzhukovv/country-explorer/internal/models"
	explorerservice "github.com/andreyzhukovv/country-explorer/internal/services/explorer"
)

// Handler обрабатывает запросы на чтение страны по коду.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики чтения страны.
type Service interface {
	ByCode(ctx context.Context, cca3 string) (*models.Country, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Страна по коду CCA3
// @Description Возвращает одну страну каталога по её трёхбуквенному коду.
// @Tags Countries
// @Produce  json
// @Param cca3 path string true "Код страны CCA3"
// @Success 200 {object} models.Country "Данные страны"
// @Failure 404 {object} response.ErrorResponse "Страна не найдена"
// @Router /api/countries/{cca3} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.countries.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cca3 := chi.URLParam(r, "cca3")

	country, err := h.service.ByCode(r.Context(), cca3)
	if err != nil {
		if errors.Is(err, explorerservice.ErrCountryNotFound) {
			log.Error("country not found", slog.String("cca3", cca3))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Country not found"))
			return
		}
		log.Error("failed to read country", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("failed to load country"))
		return
	}

	log.Info("country read", slog.String("cca3", country.CCA3))
	render.JSON(w, r, country)
}
