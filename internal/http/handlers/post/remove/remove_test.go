package remove

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

	"github.com/ggmj92/backend-blog/internal/http/middlewarectx"
	"github.com/ggmj92/backend-blog/internal/models"
	postservice "github.com/ggmj92/backend-blog/internal/services/post"
	"github.com/ggmj92/backend-blog/internal/storage/repository"
)

// MockService реализует интерфейс remove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Delete(ctx context.Context, callerUID, id string) (*models.Post, error) {
	args := m.Called(ctx, callerUID, id)
	post, _ := args.Get(0).(*models.Post)
	return post, args.Error(1)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		callerUID      string
		postID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name:      "owner deletes own post",
			callerUID: "uid-1",
			postID:    "post-1",
			setupMock: func(m *MockService) {
				m.On("Delete", mock.Anything, "uid-1", "post-1").
					Return(&models.Post{ID: "post-1", Title: "First", AuthorUID: "uid-1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"msg":"Blog post has been deleted."`, `"id":"post-1"`},
		},
		{
			// При открытой политике бизнес-логика пропускает анонимное удаление
			name:      "anonymous delete under open policy",
			callerUID: "",
			postID:    "post-1",
			setupMock: func(m *MockService) {
				m.On("Delete", mock.Anything, "", "post-1").
					Return(&models.Post{ID: "post-1", Title: "First"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"msg":"Blog post has been deleted."`},
		},
		{
			name:      "post not found",
			callerUID: "uid-1",
			postID:    "missing",
			setupMock: func(m *MockService) {
				m.On("Delete", mock.Anything, "uid-1", "missing").
					Return(nil, repository.ErrPostNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{`"msg":"No blog posts with this ID exist."`},
		},
		{
			name:      "mutation denied by policy",
			callerUID: "uid-2",
			postID:    "post-1",
			setupMock: func(m *MockService) {
				m.On("Delete", mock.Anything, "uid-2", "post-1").
					Return(nil, postservice.ErrNotAllowed)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   []string{`"msg":"Not authorized"`},
		},
		{
			name:      "service failure",
			callerUID: "uid-1",
			postID:    "post-1",
			setupMock: func(m *MockService) {
				m.On("Delete", mock.Anything, "uid-1", "post-1").
					Return(nil, errors.New("db error"))
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

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts/"+tt.postID, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.postID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			if tt.callerUID != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.callerUID)
			}
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			for _, fragment := range tt.expectedBody {
				assert.Contains(t, rec.Body.String(), fragment)
			}

			mockService.AssertExpectations(t)
		})
	}
}
