// Package search реализует HTTP-обработчик поиска поста по заголовку.
//
// Поиск работает по точному совпадению заголовка и возвращает первый
// найденный пост. Это не подстрочный и не полнотекстовый поиск.
package search

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

// Handler обрабатывает запросы на поиск поста по заголовку.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики поиска поста.
type Service interface {
	Search(ctx context.Context, title string) (*models.Post, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Поиск поста по заголовку
// @Description Возвращает первый пост с точно совпадающим заголовком. Аутентификация не требуется.
// @Tags Posts
// @Produce json
// @Param title path string true "Заголовок поста"
// @Success 200 {object} response.Response "Найденный пост"
// @Failure 400 {object} response.ErrorResponse "Пост не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /posts/search/{title} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.post.search"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	title := chi.URLParam(r, "title")

	post, err := h.service.Search(r.Context(), title)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			log.Info("post not found", slog.String("title", title))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("No blog posts found with this title."))
			return
		}
		log.Error("failed to search post", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error 500. Please contact the administrator."))
		return
	}

	log.Info("post found", slog.String("id", post.ID))
	render.JSON(w, r, response.OKWithData("Blog post found.", post))
}
