// Package remove реализует HTTP-обработчик удаления поста по ID.
//
// Привязка аутентификации к маршруту удаления определяется политикой
// изменения постов: при политике "open" маршрут публичный (историческое
// поведение), при "owner-or-admin" - за RequireAuth, и бизнес-логика
// дополнительно проверяет право вызывающего.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ggmj92/backend-blog/internal/http/middlewarectx"
	"github.com/ggmj92/backend-blog/internal/http/response"
	"github.com/ggmj92/backend-blog/internal/lib/sl"
	"github.com/ggmj92/backend-blog/internal/models"
	postservice "github.com/ggmj92/backend-blog/internal/services/post"
	"github.com/ggmj92/backend-blog/internal/storage/repository"
)

// Handler обрабатывает запросы на удаление поста.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления поста.
type Service interface {
	Delete(ctx context.Context, callerUID, id string) (*models.Post, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить пост
// @Description Удаляет пост по ID и возвращает удаленную запись.
// @Tags Posts
// @Produce json
// @Param id path string true "Идентификатор поста"
// @Success 200 {object} response.Response "Удаленный пост"
// @Failure 400 {object} response.ErrorResponse "Пост не найден"
// @Failure 401 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /posts/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.post.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	uid, _ := r.Context().Value(middlewarectx.UserUID).(string)

	post, err := h.service.Delete(r.Context(), uid, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotFound):
			log.Info("post not found", slog.String("id", id))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("No blog posts with this ID exist."))
		case errors.Is(err, postservice.ErrNotAllowed):
			log.Error("mutation denied by policy", slog.String("uid", uid))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Not authorized"))
		default:
			log.Error("failed to delete post", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Error 500. Please contact the administrator."))
		}
		return
	}

	log.Info("post deleted", slog.String("id", post.ID))
	render.JSON(w, r, response.OKWithData("Blog post has been deleted.", post))
}
