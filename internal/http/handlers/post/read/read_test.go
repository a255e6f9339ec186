package read

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ggmj92/backend-blog/internal/models"
	"github.com/ggmj92/backend-blog/internal/storage/repository"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, id string) (*models.PostView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*models.PostView)
	return view, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		postID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name:   "post found",
			postID: "post-1",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, "post-1").Return(&models.PostView{
					ID:     "post-1",
					Title:  "First",
					Author: &models.User{UID: "uid-1", Name: "Ann"},
					Date:   "11/05/2024",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"msg":"Blog post found."`, `"title":"First"`, `"name":"Ann"`},
		},
		{
			name:   "read is idempotent",
			postID: "post-1",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, "post-1").Return(&models.PostView{ID: "post-1", Title: "First"}, nil).Twice()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"id":"post-1"`},
		},
		{
			name:   "post not found",
			postID: "missing",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, "missing").Return(nil, repository.ErrPostNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{`"msg":"No blog posts found with this title."`},
		},
		{
			name:   "service failure",
			postID: "post-1",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, "post-1").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   []string{`"msg":"Error 500. Please contact the administrator."`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			attempts := 1
			if tt.name == "read is idempotent" {
				attempts = 2
			}

			var lastRec *httptest.ResponseRecorder
			var firstBody string
			for i := 0; i < attempts; i++ {
				req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/"+tt.postID, nil)

				rctx := chi.NewRouteContext()
				rctx.URLParams.Add("id", tt.postID)
				ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
				ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
				req = req.WithContext(ctx)

				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, req)

				if i == 0 {
					firstBody = rec.Body.String()
				} else {
					// Повторное чтение возвращает тот же ответ
					assert.Equal(t, firstBody, rec.Body.String())
				}
				lastRec = rec
			}

			assert.Equal(t, tt.expectedStatus, lastRec.Code)
			for _, fragment := range tt.expectedBody {
				assert.Contains(t, lastRec.Body.String(), fragment)
			}

			mockService.AssertExpectations(t)
		})
	}
}
