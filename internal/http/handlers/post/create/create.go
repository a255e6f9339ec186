// Package create реализует HTTP-обработчик создания постов.
//
// Handler принимает JSON-запрос с данными поста, валидирует их, извлекает
// идентичность вызывающего из контекста и вызывает бизнес-логику создания.
// Автором поста всегда становится вызывающий.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ggmj92/backend-blog/internal/http/middlewarectx"
	"github.com/ggmj92/backend-blog/internal/http/response"
	"github.com/ggmj92/backend-blog/internal/lib/sl"
	"github.com/ggmj92/backend-blog/internal/models"
	"github.com/ggmj92/backend-blog/internal/storage/repository"
)

// Request — входные данные для создания поста.
type Request struct {
	Title   string       `json:"title" validate:"required"`
	Content string       `json:"content" validate:"required"`
	Image   models.Image `json:"image"`
}

// Response — ответ успешного создания поста.
type Response struct {
	OK   bool         `json:"ok"`
	Post *models.Post `json:"post"`
	Msg  string       `json:"msg"`
}

// Handler управляет HTTP-запросами на создание постов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики создания постов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания поста.
type Service interface {
	Create(ctx context.Context, callerUID, title, content string, image models.Image) (*models.Post, error)
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
// @Summary Создать новый пост
// @Description Создает пост от имени текущего пользователя. Заголовок должен быть уникальным.
// @Tags Posts
// @Accept json
// @Produce json
// @Param request body Request true "Данные нового поста"
// @Success 201 {object} Response "Пост создан"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или дубликат заголовка"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /posts [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.post.create"

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

	uid, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || uid == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Not authorized"))
		return
	}

	post, err := h.service.Create(r.Context(), uid, req.Title, req.Content, req.Image)
	if err != nil {
		if errors.Is(err, repository.ErrPostExists) {
			log.Error("duplicate title", slog.String("title", req.Title))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("A post with this title already exists."))
			return
		}
		log.Error("failed to create post", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error 500. Please contact the administrator."))
		return
	}

	log.Info("post created", slog.String("id", post.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, Response{
		OK:   true,
		Post: post,
		Msg:  "Post added successfully.",
	})
}
