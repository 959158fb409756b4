// Package compare реализует HTTP-обработчик сравнения двух стран.
//
// Коды сторон обязательны. Каждая сторона может дополнительно задать
// собственный фильтр каталога (регион, верхняя граница населения,
// сортировка) — тогда ответ содержит независимо отфильтрованные списки.
package compare

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/andreyzhukovv/country-explorer/internal/http/response"
	"github.com/andreyzhukovv/country-explorer/internal/lib/sl"
	"github.com/andreyzhukovv/country-explorer/internal/models"
	explorerservice "github.com/andreyzhukovv/country-explorer/internal/services/explorer"
)

// Handler обрабатывает запросы на сравнение стран.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики сравнения.
type Service interface {
	Compare(ctx context.Context, leftCode, rightCode string, leftFilter, rightFilter *models.CompareFilter) (*explorerservice.CompareResult, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Сравнение двух стран
// @Description Строит таблицу сравнения двух стран по их кодам CCA3.
// @Tags Countries
// @Produce  json
// @Param left query string true "Код левой страны CCA3"
// @Param right query string true "Код правой страны CCA3"
// @Param leftRegion query string false "Регион фильтра левой стороны"
// @Param leftPopulationMax query int false "Верхняя граница населения левой стороны"
// @Param leftSort query string false "Сортировка списка левой стороны"
// @Param rightRegion query string false "Регион фильтра правой стороны"
// @Param rightPopulationMax query int false "Верхняя граница населения правой стороны"
// @Param rightSort query string false "Сортировка списка правой стороны"
// @Success 200 {object} explorerservice.CompareResult "Таблица сравнения"
// @Failure 400 {object} response.ErrorResponse "Отсутствует код стороны"
// @Failure 404 {object} response.ErrorResponse "Страна не найдена"
// @Router /api/countries/compare [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.countries.compare"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	leftCode, rightCode := q.Get("left"), q.Get("right")
	if leftCode == "" || rightCode == "" {
		log.Error("compare side code is missing")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("both left and right country codes are required"))
		return
	}

	leftFilter, err := sideFilter(q, "left")
	if err != nil {
		log.Error("failed to parse left filter", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}
	rightFilter, err := sideFilter(q, "right")
	if err != nil {
		log.Error("failed to parse right filter", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	result, err := h.service.Compare(r.Context(), leftCode, rightCode, leftFilter, rightFilter)
	if err != nil {
		if errors.Is(err, explorerservice.ErrCountryNotFound) {
			log.Error("country not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Country not found"))
			return
		}
		log.Error("failed to compare countries", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("failed to compare countries"))
		return
	}

	log.Info("countries compared",
		slog.String("left", leftCode),
		slog.String("right", rightCode))
	render.JSON(w, r, result)
}

// sideFilter собирает фильтр одной стороны сравнения из строки запроса.
// Если ни один параметр стороны не задан, фильтра нет (nil).
func sideFilter(q url.Values, side string) (*models.CompareFilter, error) {
	region := q.Get(side + "Region")
	rawMax := q.Get(side + "PopulationMax")
	sort := q.Get(side + "Sort")
	if region == "" && rawMax == "" && sort == "" {
		return nil, nil
	}

	max := models.PopulationMax
	if rawMax != "" {
		var err error
		if max, err = strconv.Atoi(rawMax); err != nil {
			return nil, err
		}
	}
	return &models.CompareFilter{
		Region:        region,
		PopulationMax: max,
		Sort:          sort,
	}, nil
}
