package register

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

	"github.com/ggmj92/backend-blog/internal/models"
	"github.com/ggmj92/backend-blog/internal/storage/repository"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, name, email, rawPassword string, isAdmin bool) (*models.User, string, error) {
	args := m.Called(ctx, name, email, rawPassword, isAdmin)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		requestBody    any
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   []string
		wantCookie     bool
	}{
		{
			name: "successful registration",
			requestBody: Request{
				Name:     "Ann",
				Email:    "a@x.com",
				Password: "Secret1x",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "Ann", "a@x.com", "Secret1x", false).
					Return(&models.User{UID: "uid-1", Name: "Ann", Email: "a@x.com"}, "tok-1", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   []string{`"msg":"New user created"`, `"token":"tok-1"`, `"uid":"uid-1"`},
			wantCookie:     true,
		},
		{
			name:           "invalid json",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{`"msg":"invalid request body"`},
		},
		{
			name: "every violated rule is listed",
			requestBody: Request{
				Name:     "",
				Email:    "not-an-email",
				Password: "short",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: []string{
				"field Name is a required field",
				"field Email must be a valid email address",
				"field Password must have at least 8 characters",
			},
		},
		{
			name: "password without capital letter or digit",
			requestBody: Request{
				Name:     "Ann",
				Email:    "a@x.com",
				Password: "alllowercase",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{"field Password must contain at least one capital letter and one number"},
		},
		{
			name: "duplicate email",
			requestBody: Request{
				Name:     "Ann",
				Email:    "a@x.com",
				Password: "Secret1x",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "Ann", "a@x.com", "Secret1x", false).
					Return(nil, "", repository.ErrUserExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{`"msg":"This user already exists"`},
		},
		{
			name: "service failure",
			requestBody: Request{
				Name:     "Ann",
				Email:    "a@x.com",
				Password: "Secret1x",
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "Ann", "a@x.com", "Secret1x", false).
					Return(nil, "", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   []string{`"msg":"Server error : Something went wrong"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			for _, fragment := range tt.expectedBody {
				assert.Contains(t, rec.Body.String(), fragment)
			}

			if tt.wantCookie {
				cookies := rec.Result().Cookies()
				assert.Len(t, cookies, 1)
				assert.Equal(t, "token", cookies[0].Name)
				assert.Equal(t, "tok-1", cookies[0].Value)
			}

			// Хэш пароля не должен попадать в ответ
			assert.NotContains(t, rec.Body.String(), "passwordHash")
			mockService.AssertExpectations(t)
		})
	}
}
