package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andreyzhukovv/country-explorer/internal/models"
)

type ProviderMock struct{ mock.Mock }

func (m *ProviderMock) FetchAll(ctx context.Context) ([]models.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}
func (m *ProviderMock) FetchByCode(ctx context.Context, cca3 string) (*models.Country, error) {
	args := m.Called(ctx, cca3)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) PushSearch(username, term string) error {
	return m.Called(username, term).Error(0)
}
func (m *CacheMock) RecentSearches(username string) ([]string, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func catalog() []models.Country {
	return []models.Country{
		{CCA3: "ALA", Name: models.CountryName{Common: "Aland"}, Population: 10000, Region: "Europe"},
		{CCA3: "FRA", Name: models.CountryName{Common: "France"}, Population: 67391582, Region: "Europe", Area: 551695},
		{CCA3: "ZMB", Name: models.CountryName{Common: "Zambia"}, Population: 19000000, Region: "Africa", Area: 752612},
	}
}

func TestExplorerService_All_CacheMiss(t *testing.T) {
	provider := new(ProviderMock)
	cacheMock := new(CacheMock)

	cacheMock.On("Get", "countries:all", mock.Anything).Return(false, nil).Once()
	provider.On("FetchAll", mock.Anything).Return(catalog(), nil).Once()
	cacheMock.On("Set", "countries:all", mock.Anything, time.Hour).Return(nil).Once()

	svc := NewExplorerService(provider, cacheMock, time.Hour, newNoopLogger())
	countries, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, countries, 3)

	provider.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestExplorerService_All_CacheErrorFallsThrough(t *testing.T) {
	provider := new(ProviderMock)
	cacheMock := new(CacheMock)

	cacheMock.On("Get", "countries:all", mock.Anything).Return(false, errors.New("redis down")).Once()
	provider.On("FetchAll", mock.Anything).Return(catalog(), nil).Once()
	cacheMock.On("Set", "countries:all", mock.Anything, time.Hour).Return(errors.New("redis down")).Once()

	svc := NewExplorerService(provider, cacheMock, time.Hour, newNoopLogger())
	countries, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, countries, 3)
}

func TestExplorerService_Search(t *testing.T) {
	provider := new(ProviderMock)
	cacheMock := new(CacheMock)

	cacheMock.On("Get", "countries:all", mock.Anything).Return(false, nil)
	provider.On("FetchAll", mock.Anything).Return(catalog(), nil)
	cacheMock.On("Set", "countries:all", mock.Anything, time.Hour).Return(nil)

	svc := NewExplorerService(provider, cacheMock, time.Hour, newNoopLogger())

	t.Run("region filter with pagination metadata", func(t *testing.T) {
		filter := models.DefaultFilterState()
		filter.Region = "Europe"

		res, err := svc.Search(context.Background(), filter, 1, 8, "")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Equal(t, 1, res.TotalPages)
		assert.Len(t, res.Countries, 2)
	})

	t.Run("out of range page stays on first", func(t *testing.T) {
		res, err := svc.Search(context.Background(), models.DefaultFilterState(), 99, 8, "")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Page)
		assert.Len(t, res.Countries, 3)
	})

	t.Run("search term of authenticated user is recorded", func(t *testing.T) {
		cacheMock.On("PushSearch", "user1", "fra").Return(nil).Once()

		filter := models.DefaultFilterState()
		filter.SearchTerm = "fra"

		res, err := svc.Search(context.Background(), filter, 1, 8, "user1")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		cacheMock.AssertExpectations(t)
	})

	t.Run("history write failure does not break search", func(t *testing.T) {
		cacheMock.On("PushSearch", "user1", "zam").Return(errors.New("redis down")).Once()

		filter := models.DefaultFilterState()
		filter.SearchTerm = "zam"

		res, err := svc.Search(context.Background(), filter, 1, 8, "user1")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("anonymous search is not recorded", func(t *testing.T) {
		filter := models.DefaultFilterState()
		filter.SearchTerm = "fra"

		_, err := svc.Search(context.Background(), filter, 1, 8, "")
		require.NoError(t, err)
		cacheMock.AssertNotCalled(t, "PushSearch", "", "fra")
	})
}

func TestExplorerService_ByCode(t *testing.T) {
	provider := new(ProviderMock)
	cacheMock := new(CacheMock)

	cacheMock.On("Get", "countries:all", mock.Anything).Return(false, nil)
	provider.On("FetchAll", mock.Anything).Return(catalog(), nil)
	cacheMock.On("Set", "countries:all", mock.Anything, time.Hour).Return(nil)

	svc := NewExplorerService(provider, cacheMock, time.Hour, newNoopLogger())

	country, err := svc.ByCode(context.Background(), "fra")
	require.NoError(t, err)
	assert.Equal(t, "FRA", country.CCA3)

	_, err = svc.ByCode(context.Background(), "XXX")
	assert.ErrorIs(t, err, ErrCountryNotFound)
}

func TestExplorerService_Compare(t *testing.T) {
	provider := new(ProviderMock)
	cacheMock := new(CacheMock)

	cacheMock.On("Get", "countries:all", mock.Anything).Return(false, nil)
	provider.On("FetchAll", mock.Anything).Return(catalog(), nil)
	cacheMock.On("Set", "countries:all", mock.Anything, time.Hour).Return(nil)

	svc := NewExplorerService(provider, cacheMock, time.Hour, newNoopLogger())

	t.Run("comparison table only", func(t *testing.T) {
		res, err := svc.Compare(context.Background(), "FRA", "ZMB", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "FRA", res.Comparison.Left.CCA3)
		assert.Equal(t, "ZMB", res.Comparison.Right.CCA3)
		assert.Nil(t, res.LeftList)
		assert.Nil(t, res.RightList)
	})

	t.Run("side filters produce independent lists", func(t *testing.T) {
		res, err := svc.Compare(context.Background(), "FRA", "ZMB",
			&models.CompareFilter{Region: "Europe", PopulationMax: models.PopulationMax, Sort: models.SortByName},
			&models.CompareFilter{Region: "Africa", PopulationMax: models.PopulationMax, Sort: models.SortByName},
		)
		require.NoError(t, err)
		assert.Len(t, res.LeftList, 2)
		assert.Len(t, res.RightList, 1)
	})

	t.Run("unknown code fails", func(t *testing.T) {
		_, err := svc.Compare(context.Background(), "FRA", "XXX", nil, nil)
		assert.ErrorIs(t, err, ErrCountryNotFound)
	})
}

func TestExplorerService_RecentSearches(t *testing.T) {
	cacheMock := new(CacheMock)
	cacheMock.On("RecentSearches", "user1").Return([]string{"fra", "zam"}, nil).Once()

	svc := NewExplorerService(new(ProviderMock), cacheMock, time.Hour, newNoopLogger())
	terms, err := svc.RecentSearches(context.Background(), "user1")
	require.NoError(t, err)
	assert.Equal(t, []string{"fra", "zam"}, terms)
}
