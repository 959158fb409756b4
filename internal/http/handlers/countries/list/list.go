// Package list реализует HTTP-обработчик постраничного каталога стран.
//
// Параметры фильтрации, сортировки и страницы передаются строкой запроса.
// Для аутентифицированного пользователя непустой поисковый запрос
// попадает в его историю поиска.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/andreyzhukovv/country-explorer/internal/http/middlewarectx"
	"github.com/andreyzhukovv/country-explorer/internal/http/response"
	"github.com/andreyzhukovv/country-explorer/internal/lib/sl"
	"github.com/andreyzhukovv/country-explorer/internal/models"
	explorerservice "github.com/andreyzhukovv/country-explorer/internal/services/explorer"
)

// Handler обрабатывает запросы на выдачу страницы каталога.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики поиска по каталогу.
type Service interface {
	Search(ctx context.Context, filter models.FilterState, page, pageSize int, username string) (*explorerservice.SearchResult, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Страница каталога стран
// @Description Возвращает отфильтрованную и отсортированную страницу каталога.
// @Tags Countries
// @Produce  json
// @Param search query string false "Подстрока названия страны"
// @Param region query string false "Регион (точное совпадение)"
// @Param minPopulation query int false "Нижняя граница населения"
// @Param maxPopulation query int false "Верхняя граница населения"
// @Param sort query string false "Ключ сортировки: name, population, area, с ведущим - для обратного порядка"
// @Param page query int false "Номер страницы, начиная с 1"
// @Param pageSize query int false "Размер страницы"
// @Success 200 {object} explorerservice.SearchResult "Страница каталога"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры запроса"
// @Failure 502 {object} response.ErrorResponse "Внешний API недоступен"
// @Router /api/countries [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.countries.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter, page, pageSize, err := parseQuery(r)
	if err != nil {
		log.Error("failed to parse query params", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	username := middlewarectx.Username(r.Context())

	result, err := h.service.Search(r.Context(), filter, page, pageSize, username)
	if err != nil {
		log.Error("failed to search countries", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("failed to load countries"))
		return
	}

	log.Info("countries page served",
		slog.Int("total", result.Total),
		slog.Int("page", result.Page))
	render.JSON(w, r, result)
}

// parseQuery собирает FilterState и параметры страницы из строки запроса.
// Отсутствующие параметры получают значения по умолчанию.
func parseQuery(r *http.Request) (models.FilterState, int, int, error) {
	q := r.URL.Query()

	filter := models.DefaultFilterState()
	filter.SearchTerm = q.Get("search")
	filter.Region = q.Get("region")
	if sort := q.Get("sort"); sort != "" {
		filter.Sort = sort
	}

	var err error
	if filter.Population.Min, err = intParam(q.Get("minPopulation"), models.PopulationMin); err != nil {
		return filter, 0, 0, err
	}
	if filter.Population.Max, err = intParam(q.Get("maxPopulation"), models.PopulationMax); err != nil {
		return filter, 0, 0, err
	}

	page, err := intParam(q.Get("page"), 1)
	if err != nil {
		return filter, 0, 0, err
	}
	pageSize, err := intParam(q.Get("pageSize"), 0)
	if err != nil {
		return filter, 0, 0, err
	}
	return filter, page, pageSize, nil
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
