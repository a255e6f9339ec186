// Package update реализует HTTP-обработчик обновления поста по ID.
//
// Каждый запрос получает ровно один ответ: любая внутренняя ошибка
// превращается в ответ 500, а не теряется молча. Право на изменение
// определяет политика бизнес-логики, а не маршрутизация.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ggmj92/backend-blog/internal/http/middlewarectx"
	"github.com/ggmj92/backend-blog/internal/http/response"
	"github.com/ggmj92/backend-blog/internal/lib/sl"
	"github.com/ggmj92/backend-blog/internal/models"
	postservice "github.com/ggmj92/backend-blog/internal/services/post"
	"github.com/ggmj92/backend-blog/internal/storage/repository"
)

// Request — входные данные для обновления поста.
type Request struct {
	Title   string       `json:"title" validate:"required"`
	Content string       `json:"content" validate:"required"`
	Image   models.Image `json:"image"`
}

// Response — ответ успешного обновления поста.
type Response struct {
	OK   bool         `json:"ok"`
	Post *models.Post `json:"post"`
	Msg  string       `json:"msg"`
}

// Handler управляет HTTP-запросами на обновление постов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления поста.
type Service interface {
	Update(ctx context.Context, callerUID, id, title, content string, image models.Image) (*models.Post, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить пост
// @Description Заменяет заголовок, текст и иллюстрацию поста с данным ID.
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор поста"
// @Param request body Request true "Новые данные поста"
// @Success 200 {object} Response "Пост обновлен"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации, пост не найден или дубликат заголовка"
// @Failure 401 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /posts/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.post.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("title", req.Title))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	id := chi.URLParam(r, "id")
	uid, _ := r.Context().Value(middlewarectx.UserUID).(string)

	post, err := h.service.Update(r.Context(), uid, id, req.Title, req.Content, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotFound):
			log.Info("post not found", slog.String("id", id))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("No blog posts with this ID exist."))
		case errors.Is(err, repository.ErrPostExists):
			log.Error("duplicate title", slog.String("title", req.Title))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("A post with this title already exists."))
		case errors.Is(err, postservice.ErrNotAllowed):
			log.Error("mutation denied by policy", slog.String("uid", uid))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Not authorized"))
		default:
			log.Error("failed to update post", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Error 500. Please contact the administrator."))
		}
		return
	}

	log.Info("post updated", slog.String("id", post.ID))
	render.JSON(w, r, Response{
		OK:   true,
		Post: post,
		Msg:  "The blog post has been updated.",
	})
}
