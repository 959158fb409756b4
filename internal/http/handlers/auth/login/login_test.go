package login

import (
	"bytes"
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

	authservice "github.com/andreyzhukovv/country-explorer/internal/services/auth"
)

// Мок сервиса с методом Login
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, identifier, password string) (*authservice.AuthResult, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authservice.AuthResult), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	okResult := &authservice.AuthResult{
		ID:       "64f0c5d2a1b2c3d4e5f60718",
		Name:     "User One",
		Username: "user1",
		Email:    "user1@example.com",
		Token:    "signed-token",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockResult     *authservice.AuthResult
		mockErr        error
		wantStatusCode int
		wantToken      string
		wantMessage    string
	}{
		{
			name:           "valid login by email",
			requestBody:    Request{Email: "user1@example.com", Password: "password123"},
			mockResult:     okResult,
			wantStatusCode: http.StatusOK,
			wantToken:      "signed-token",
		},
		{
			name:           "valid login by username",
			requestBody:    Request{Email: "user1", Password: "password123"},
			mockResult:     okResult,
			wantStatusCode: http.StatusOK,
			wantToken:      "signed-token",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
		},
		{
			name:           "validation error - short password",
			requestBody:    Request{Email: "user1@example.com", Password: "123"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantMessage:    "field Password is too short",
		},
		{
			name:           "wrong credentials",
			requestBody:    Request{Email: "user1@example.com", Password: "wrongpass"},
			mockErr:        authservice.ErrInvalidCredentials,
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "Invalid email/username or password",
		},
		{
			name:           "storage error",
			requestBody:    Request{Email: "user1@example.com", Password: "password123"},
			mockErr:        errors.New("mongo down"),
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "failed to login user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			if tt.mockResult != nil || tt.mockErr != nil {
				authMock.On("Login", mock.Anything, mock.Anything, mock.Anything).
					Return(tt.mockResult, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), authMock)

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, got["message"])
			}
			if tt.wantToken != "" {
				assert.Equal(t, tt.wantToken, got["token"])
			}

			authMock.AssertExpectations(t)
		})
	}
}
