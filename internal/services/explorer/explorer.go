// Package services содержит бизнес-логику каталога стран: загрузку
// справочника из внешнего API с кешированием, поиск с фильтрацией и
// постраничным выводом, сравнение стран и историю поисковых запросов.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/andreyzhukovv/country-explorer/internal/explorer"
	"github.com/andreyzhukovv/country-explorer/internal/models"
)

// countriesCacheKey — ключ кеша полного каталога стран.
const countriesCacheKey = "countries:all"

// ErrCountryNotFound — страна с данным кодом отсутствует в каталоге.
var ErrCountryNotFound = errors.New("country not found")

// CountryProvider описывает клиент внешнего API стран.
type CountryProvider interface {
	// FetchAll загружает полный нормализованный каталог.
	FetchAll(ctx context.Context) ([]models.Country, error)
	// FetchByCode загружает одну страну по коду CCA3.
	FetchByCode(ctx context.Context, cca3 string) (*models.Country, error)
}

// Cache описывает методы кеширования и истории поиска.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// PushSearch записывает поисковый запрос в историю пользователя.
	PushSearch(username, term string) error
	// RecentSearches возвращает историю поиска пользователя.
	RecentSearches(username string) ([]string, error)
}

// SearchResult — страница отфильтрованного каталога вместе с метаданными
// постраничного вывода.
type SearchResult struct {
	Countries  []models.Country `json:"countries"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// CompareResult — таблица сравнения двух стран и, при заданных фильтрах
// сторон, независимо отфильтрованные списки каждой стороны.
type CompareResult struct {
	Comparison explorer.Comparison `json:"comparison"`
	LeftList   []models.Country    `json:"left_list,omitempty"`
	RightList  []models.Country    `json:"right_list,omitempty"`
}

// ExplorerService реализует операции каталога стран поверх внешнего API
// и кеша.
type ExplorerService struct {
	api   CountryProvider
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewExplorerService создает новый экземпляр ExplorerService.
func NewExplorerService(api CountryProvider, cache Cache, ttl time.Duration, log *slog.Logger) *ExplorerService {
	return &ExplorerService{
		api:   api,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

// All возвращает полный каталог стран, используя кеш или внешний API.
// Ошибки кеша не фатальны: каталог в этом случае загружается напрямую.
func (s *ExplorerService) All(ctx context.Context) ([]models.Country, error) {
	const op = "explorer.All"

	var cached []models.Country
	found, err := s.cache.Get(countriesCacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read countries cache", slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	countries, err := s.api.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("fetched countries from API", slog.Int("count", len(countries)))

	if err := s.cache.Set(countriesCacheKey, countries, s.ttl); err != nil {
		s.log.Warn("failed to cache countries", slog.Any("err", err))
	}
	return countries, nil
}

// Search возвращает страницу каталога, отфильтрованную и отсортированную
// по заданному состоянию фильтра. Номер страницы за пределами допустимого
// диапазона игнорируется — остаётся первая страница.
//
// Непустой поисковый запрос аутентифицированного пользователя попадает
// в его историю поиска; ошибка записи истории не мешает поиску.
func (s *ExplorerService) Search(ctx context.Context, filter models.FilterState, page, pageSize int, username string) (*SearchResult, error) {
	countries, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	filtered := explorer.ApplyFilters(countries, filter)
	pager := explorer.NewPaginator(pageSize).WithPage(page, len(filtered))

	if username != "" && strings.TrimSpace(filter.SearchTerm) != "" {
		if err := s.cache.PushSearch(username, filter.SearchTerm); err != nil {
			s.log.Warn("failed to record search history", slog.Any("err", err))
		}
	}

	return &SearchResult{
		Countries:  pager.Window(filtered),
		Total:      len(filtered),
		Page:       pager.Page,
		PageSize:   pager.Size,
		TotalPages: pager.TotalPages(len(filtered)),
	}, nil
}

// ByCode возвращает страну по коду CCA3. Сначала код ищется в
// закешированном каталоге, затем одиночным запросом к API.
func (s *ExplorerService) ByCode(ctx context.Context, cca3 string) (*models.Country, error) {
	countries, err := s.All(ctx)
	if err == nil {
		for _, c := range countries {
			if strings.EqualFold(c.CCA3, cca3) {
				return &c, nil
			}
		}
		return nil, ErrCountryNotFound
	}

	country, err := s.api.FetchByCode(ctx, cca3)
	if err != nil {
		return nil, ErrCountryNotFound
	}
	return country, nil
}

// Compare строит таблицу сравнения двух стран по их кодам.
// Ненулевые фильтры сторон дополняют результат независимо
// отфильтрованными списками: каждая сторона ограничивает полный каталог
// своим регионом, верхней границей населения и сортировкой.
func (s *ExplorerService) Compare(ctx context.Context, leftCode, rightCode string, leftFilter, rightFilter *models.CompareFilter) (*CompareResult, error) {
	left, err := s.ByCode(ctx, leftCode)
	if err != nil {
		return nil, err
	}
	right, err := s.ByCode(ctx, rightCode)
	if err != nil {
		return nil, err
	}

	result := &CompareResult{
		Comparison: explorer.NewComparison(*left, *right),
	}

	if leftFilter != nil || rightFilter != nil {
		countries, err := s.All(ctx)
		if err != nil {
			return nil, err
		}
		if leftFilter != nil {
			result.LeftList = explorer.ApplyFilters(countries, leftFilter.AsFilterState())
		}
		if rightFilter != nil {
			result.RightList = explorer.ApplyFilters(countries, rightFilter.AsFilterState())
		}
	}
	return result, nil
}

// RecentSearches возвращает недавние поисковые запросы пользователя.
func (s *ExplorerService) RecentSearches(_ context.Context, username string) ([]string, error) {
	terms, err := s.cache.RecentSearches(username)
	if err != nil {
		return nil, err
	}
	if terms == nil {
		terms = []string{}
	}
	return terms, nil
}
