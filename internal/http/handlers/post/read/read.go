// Package read реализует HTTP-обработчик получения поста по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику
// и возвращает пост с развернутым автором в JSON-формате.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ggmj92/backend-blog/internal/http/response"
	"github.com/ggmj92/backend-blog/internal/lib/sl"
	"github.com/ggmj92/backend-blog/internal/models"
	"github.com/ggmj92/backend-blog/internal/storage/repository"
)

// Handler обрабатывает запросы на получение поста по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения поста.
type Service interface {
	Read(ctx context.Context, id string) (*models.PostView, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить пост по ID
// @Description Возвращает пост с развернутым автором. Аутентификация не требуется.
// @Tags Posts
// @Produce json
// @Param id path string true "Идентификатор поста"
// @Success 200 {object} response.Response "Найденный пост"
// @Failure 400 {object} response.ErrorResponse "Пост не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /posts/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.post.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	view, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			log.Info("post not found", slog.String("id", id))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("No blog posts found with this title."))
			return
		}
		log.Error("failed to read post", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error 500. Please contact the administrator."))
		return
	}

	log.Info("post found", slog.String("id", id))
	render.JSON(w, r, response.OKWithData("Blog post found.", view))
}
