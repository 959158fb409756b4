package read

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/andreyzhukovv/country-explorer/internal/models"
	explorerservice "github.com/andreyzhukovv/country-explorer/internal/services/explorer"
)

// Мок сервиса с методом ByCode
type ExplorerServiceMock struct {
	mock.Mock
}

func (m *ExplorerServiceMock) ByCode(ctx context.Context, cca3 string) (*models.Country, error) {
	args := m.Called(ctx, cca3)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newRequest(cca3 string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/countries/"+cca3, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("cca3", cca3)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.RequestIDKey, "reqid123")
	return req.WithContext(ctx)
}

func TestReadHandler_ServeHTTP(t *testing.T) {
	t.Run("country found", func(t *testing.T) {
		serviceMock := new(ExplorerServiceMock)
		serviceMock.On("ByCode", mock.Anything, "FRA").
			Return(&models.Country{CCA3: "FRA", Name: models.CountryName{Common: "France"}}, nil).Once()

		handler := New(newNoopLogger(), serviceMock)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, newRequest("FRA"))

		assert.Equal(t, http.StatusOK, rec.Code)

		var got models.Country
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "FRA", got.CCA3)
		assert.Equal(t, "France", got.Name.Common)

		serviceMock.AssertExpectations(t)
	})

	t.Run("country not found", func(t *testing.T) {
		serviceMock := new(ExplorerServiceMock)
		serviceMock.On("ByCode", mock.Anything, "XXX").
			Return(nil, explorerservice.ErrCountryNotFound).Once()

		handler := New(newNoopLogger(), serviceMock)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, newRequest("XXX"))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var got map[string]any
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "Country not found", got["message"])
	})
}
