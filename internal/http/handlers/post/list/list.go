// Package list реализует HTTP-обработчик публичного списка постов.
//
// Handler возвращает все посты с развернутыми авторами и датой в формате
// DD/MM/YYYY. Если OptionalAuth положил в контекст имя вызывающего,
// оно отражается в ответе.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ggmj92/backend-blog/internal/http/middlewarectx"
	"github.com/ggmj92/backend-blog/internal/http/response"
	"github.com/ggmj92/backend-blog/internal/lib/sl"
	"github.com/ggmj92/backend-blog/internal/models"
)

// Response — ответ публичного списка постов.
type Response struct {
	OK   bool               `json:"ok"`
	Msg  string             `json:"msg"`
	Data []*models.PostView `json:"data"`
	User string             `json:"user,omitempty"` // Имя вызывающего, если он аутентифицирован
}

// Handler обрабатывает запросы на публичный список постов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения постов.
type Service interface {
	List(ctx context.Context) ([]*models.PostView, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список всех постов
// @Description Возвращает все посты блога с развернутыми авторами. Аутентификация не требуется.
// @Tags Posts
// @Produce json
// @Success 200 {object} Response "Список постов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /posts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.post.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	views, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error 500. Please contact the administrator."))
		return
	}

	callerName, _ := r.Context().Value(middlewarectx.UserName).(string)

	log.Info("listed posts", slog.Int("count", len(views)))
	render.JSON(w, r, Response{
		OK:   true,
		Msg:  "Showing all blog posts",
		Data: views,
		User: callerName,
	})
}
