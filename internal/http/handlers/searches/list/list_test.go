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
)

// Мок сервиса с методом RecentSearches
type ExplorerServiceMock struct {
	mock.Mock
}

func (m *ExplorerServiceMock) RecentSearches(ctx context.Context, username string) ([]string, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newAuthedRequest(username string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/users/searches", nil)
	ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
	ctx = context.WithValue(ctx, middlewarectx.User, username)
	return req.WithContext(ctx)
}

func TestSearchesListHandler_ServeHTTP(t *testing.T) {
	t.Run("returns recent searches", func(t *testing.T) {
		serviceMock := new(ExplorerServiceMock)
		serviceMock.On("RecentSearches", mock.Anything, "user1").
			Return([]string{"spain", "japan"}, nil).Once()

		handler := New(newNoopLogger(), serviceMock)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, newAuthedRequest("user1"))

		assert.Equal(t, http.StatusOK, rec.Code)

		var got map[string]any
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		searches, ok := got["searches"].([]any)
		assert.True(t, ok)
		assert.Equal(t, []any{"spain", "japan"}, searches)

		serviceMock.AssertExpectations(t)
	})

	t.Run("cache failure maps to internal error", func(t *testing.T) {
		serviceMock := new(ExplorerServiceMock)
		serviceMock.On("RecentSearches", mock.Anything, "user1").
			Return(nil, errors.New("redis down")).Once()

		handler := New(newNoopLogger(), serviceMock)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, newAuthedRequest("user1"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var got map[string]any
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "failed to read search history", got["message"])
	})
}
