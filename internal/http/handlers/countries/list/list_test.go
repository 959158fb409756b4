package list

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/andreyzhukovv/country-explorer/internal/http/middlewarectx"
	"github.com/andreyzhukovv/country-explorer/internal/models"
	explorerservice "github.com/andreyzhukovv/country-explorer/internal/services/explorer"
)

// Мок сервиса с методом Search
type ExplorerServiceMock struct {
	mock.Mock
}

func (m *ExplorerServiceMock) Search(ctx context.Context, filter models.FilterState, page, pageSize int, username string) (*explorerservice.SearchResult, error) {
	args := m.Called(ctx, filter, page, pageSize, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*explorerservice.SearchResult), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestListHandler_ServeHTTP(t *testing.T) {
	okResult := &explorerservice.SearchResult{
		Countries:  []models.Country{{CCA3: "FRA"}},
		Total:      1,
		Page:       1,
		PageSize:   12,
		TotalPages: 1,
	}

	t.Run("defaults applied to missing params", func(t *testing.T) {
		serviceMock := new(ExplorerServiceMock)
		wantFilter := models.DefaultFilterState()
		serviceMock.On("Search", mock.Anything, wantFilter, 1, 0, "").
			Return(okResult, nil).Once()

		handler := New(newNoopLogger(), serviceMock)

		req := httptest.NewRequest(http.MethodGet, "/api/countries", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got explorerservice.SearchResult
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, 1, got.Total)
		assert.Len(t, got.Countries, 1)

		serviceMock.AssertExpectations(t)
	})

	t.Run("query params forwarded to service", func(t *testing.T) {
		serviceMock := new(ExplorerServiceMock)
		wantFilter := models.FilterState{
			SearchTerm: "fra",
			Region:     "Europe",
			Population: models.PopulationRange{Min: 1000, Max: 90_000_000},
			Sort:       "-population",
		}
		serviceMock.On("Search", mock.Anything, wantFilter, 2, 24, "user1").
			Return(okResult, nil).Once()

		handler := New(newNoopLogger(), serviceMock)

		url := "/api/countries?search=fra&region=Europe&minPopulation=1000&maxPopulation=90000000&sort=-population&page=2&pageSize=24"
		req := httptest.NewRequest(http.MethodGet, url, nil)
		ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
		ctx = context.WithValue(ctx, middlewarectx.User, "user1")
		req = req.WithContext(ctx)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		serviceMock.AssertExpectations(t)
	})

	t.Run("non-numeric page is a bad request", func(t *testing.T) {
		serviceMock := new(ExplorerServiceMock)
		handler := New(newNoopLogger(), serviceMock)

		req := httptest.NewRequest(http.MethodGet, "/api/countries?page=abc", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		serviceMock.AssertNotCalled(t, "Search")
	})

	t.Run("upstream failure maps to bad gateway", func(t *testing.T) {
		serviceMock := new(ExplorerServiceMock)
		serviceMock.On("Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("api unreachable")).Once()

		handler := New(newNoopLogger(), serviceMock)

		req := httptest.NewRequest(http.MethodGet, "/api/countries", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var got map[string]any
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "failed to load countries", got["message"])
	})
}
